// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/vocpbx/audio"
	"github.com/ik5/vocpbx/utils"
)

const captureChunk = 4096

// Capture drains src into a non-looping Buffer. Multi-channel input is
// averaged to mono. When rate is positive and differs from the source rate
// the stream is resampled first; otherwise the source rate is kept.
//
// src is not closed.
func Capture(src audio.Source, rate int) (*Buffer, error) {
	var stream audio.Source = audio.NewMonoMixer(src)
	if rate > 0 && rate != src.SampleRate() {
		stream = audio.NewResampler(stream, rate)
	}

	b := NewBuilder(0)
	b.SetSampleRate(stream.SampleRate())

	in := make([]float32, captureChunk)
	out := make([]byte, captureChunk)

	for {
		n, err := stream.ReadSamples(in)
		for i, v := range in[:n] {
			out[i] = utils.Float32ToUint8(v)
		}
		b.Append(out[:n])

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
	}

	return b.Finish(), nil
}
