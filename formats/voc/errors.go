// SPDX-License-Identifier: EPL-2.0

package voc

import "errors"

var (
	// ErrMalformedContainer indicates input that cannot hold a VOC stream
	ErrMalformedContainer = errors.New("malformed VOC container")

	// ErrTruncatedBlock indicates a block whose payload runs past the input
	ErrTruncatedBlock = errors.New("truncated VOC block")

	// ErrUnsupportedCodec indicates sound data not encoded as 8-bit PCM
	ErrUnsupportedCodec = errors.New("unsupported VOC codec")

	// ErrUnknownBlockType indicates a block type tag outside 0..7
	ErrUnknownBlockType = errors.New("unknown VOC block type")

	// ErrStop can be returned by a Walk callback to end the walk early
	ErrStop = errors.New("stop walking")
)
