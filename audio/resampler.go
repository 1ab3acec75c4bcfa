// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/vocpbx/utils"
)

// maxEmptyReads bounds how many times a source may return (0, nil) in a row.
const maxEmptyReads = 100

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation. The channel layout is preserved. When downsampling a one-pole
// low-pass is applied to the input frames.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames consumed per output frame
	frac     float64

	// hist holds source frames t-1, t, t+1, t+2. Output is interpolated
	// between hist[1] and hist[2].
	hist   [4][]float32
	valid  [4]bool
	primed bool

	in           []float32
	inPos, inLen int
	srcDone      bool

	lowpass bool
	warm    bool
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		in:       make([]float32, 1024*channels),
		state:    make([]float32, channels),
	}
	r.lowpass = r.step > 1

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}

	return nil
}

// pull copies the next source frame into dst. It reports false once the
// source is drained.
func (r *Resampler) pull(dst []float32) (bool, error) {
	empty := 0
	for r.inPos >= r.inLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		n -= n % r.channels
		r.inPos, r.inLen = 0, n

		switch {
		case errors.Is(err, io.EOF):
			r.srcDone = true
		case err != nil:
			return false, fmt.Errorf("resampler: %w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		if !r.warm {
			copy(r.state, dst)
			r.warm = true
		}
		for c := range dst {
			dst[c] = 0.5*dst[c] + 0.5*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.hist[1])
	if err != nil || !ok {
		return err
	}
	r.valid[1] = true
	copy(r.hist[0], r.hist[1])

	for i := 2; i < len(r.hist); i++ {
		ok, err := r.pull(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.valid[i] = ok
	}

	return nil
}

// advance shifts the history window one frame forward.
func (r *Resampler) advance() error {
	oldest := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	copy(r.valid[:], r.valid[1:])
	r.hist[3] = oldest

	ok, err := r.pull(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.valid[3] = ok

	return nil
}

// ReadSamples produces resampled interleaved samples. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < len(dst) && r.valid[1] {
		t := float32(r.frac)
		for c := range r.channels {
			dst[n+c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], t)
		}
		n += r.channels

		r.frac += r.step
		for r.frac >= 1 && r.valid[1] {
			r.frac--
			if err := r.advance(); err != nil {
				return n, err
			}
		}
	}

	if n == 0 && !r.valid[1] {
		return 0, io.EOF
	}

	return n, nil
}
