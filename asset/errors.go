// SPDX-License-Identifier: EPL-2.0

package asset

import "errors"

var (
	// ErrNotFound indicates the byte source has no asset under the name
	ErrNotFound = errors.New("asset not found")

	// ErrUnsupportedFormat indicates no decoder is known for the asset extension
	ErrUnsupportedFormat = errors.New("unsupported asset format")
)
