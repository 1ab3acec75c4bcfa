// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/vocpbx/sound"
)

// WriteSoundBuffer writes b as a mono 8-bit PCM WAV. Loop points are not
// stored. The writer must be seekable so the header sizes can be patched once
// the data is written.
func WriteSoundBuffer(w io.WriteSeeker, b *sound.Buffer) error {
	if b.SampleRate() <= 0 {
		return ErrNoSampleRate
	}

	enc := wav.NewEncoder(w, b.SampleRate(), 8, 1, formatPCM)
	if err := enc.Write(b.IntBuffer()); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}

	return nil
}
