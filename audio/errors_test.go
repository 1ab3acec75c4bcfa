// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	expectedMsg := "dst size must be multiple of channels"
	if ErrInvalidDstSize.Error() != expectedMsg {
		t.Errorf("ErrInvalidDstSize.Error() = %q, want %q", ErrInvalidDstSize.Error(), expectedMsg)
	}

	wrapped := fmt.Errorf("resampler: %w", ErrInvalidDstSize)
	if !errors.Is(wrapped, ErrInvalidDstSize) {
		t.Error("errors.Is(wrapped, ErrInvalidDstSize) = false, want true")
	}
}
