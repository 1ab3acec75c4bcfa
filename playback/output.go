// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/ik5/vocpbx/audio"
	"github.com/ik5/vocpbx/sound"
)

// DefaultMixerRate is the output rate used when none is configured.
const DefaultMixerRate = 22050

const pollInterval = 10 * time.Millisecond

// player is the part of *oto.Player Output drives.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Err() error
	Close() error
}

// Output plays sound buffers on the default audio device.
type Output struct {
	rate      int
	newPlayer func(io.Reader) player
	logger    *log.Logger
}

// NewOutput opens the audio device as a mono 16-bit stream at rate Hz. The
// device stays open for the life of the process, so create one Output only.
func NewOutput(rate int, logger *log.Logger) (*Output, error) {
	if rate <= 0 {
		rate = DefaultMixerRate
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return newOutput(rate, func(r io.Reader) player { return ctx.NewPlayer(r) }, logger), nil
}

func newOutput(rate int, newPlayer func(io.Reader) player, logger *log.Logger) *Output {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Output{rate: rate, newPlayer: newPlayer, logger: logger}
}

// Rate is the mixer rate in Hz.
func (o *Output) Rate() int { return o.rate }

// Play plays b, repeating its loop region loops extra times (sound.Forever
// for no end), and blocks until playback finishes or ctx is done.
func (o *Output) Play(ctx context.Context, b *sound.Buffer, loops int) error {
	if b.SampleRate() <= 0 {
		return fmt.Errorf("playing %d byte buffer: no sample rate", b.Size())
	}

	var src audio.Source = sound.NewStream(b, loops)
	if b.SampleRate() != o.rate {
		src = audio.NewResampler(src, o.rate)
	}

	o.logger.Debug("playing sound",
		"size", b.Size(), "rate", b.SampleRate(), "mixer", o.rate,
		"looping", b.Looping(), "loops", loops, "duration", b.Duration())

	p := o.newPlayer(NewPCMReader(src))
	defer p.Close()

	p.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := p.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}
