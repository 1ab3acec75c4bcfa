// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Source serves a fixed slice of interleaved samples. It satisfies
// audio.Source without importing it.
type Source struct {
	rate     int
	channels int
	samples  []float32
	pos      int
	closed   bool
}

// NewSource wraps interleaved samples.
func NewSource(rate, channels int, samples []float32) *Source {
	return &Source{rate: rate, channels: channels, samples: samples}
}

// NewSineSource generates frames of a sine tone on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *Source {
	samples := make([]float32, frames*channels)
	for f := range frames {
		v := float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(rate)))
		for c := range channels {
			samples[f*channels+c] = v
		}
	}

	return NewSource(rate, channels, samples)
}

// NewConstantSource generates frames holding value on every channel.
func NewConstantSource(rate, channels, frames int, value float32) *Source {
	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = value
	}

	return NewSource(rate, channels, samples)
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { s.closed = true; return nil }

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst[:len(dst)-len(dst)%s.channels], s.samples[s.pos:])
	s.pos += n

	return n, nil
}
