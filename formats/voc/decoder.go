// SPDX-License-Identifier: EPL-2.0

package voc

import (
	"fmt"
	"io"

	"github.com/ik5/vocpbx/audio"
	"github.com/ik5/vocpbx/sound"
	"github.com/ik5/vocpbx/utils"
)

// ContinueMode selects how many bytes a sound continue block contributes.
type ContinueMode int

const (
	// ContinueCompat copies the declared length starting 2 bytes into the
	// payload, clamped to the end of input. Existing game data decodes
	// byte for byte the same as in the original engine.
	ContinueCompat ContinueMode = iota
	// ContinueTrimmed copies length-2 bytes starting 2 bytes into the
	// payload, staying inside the block.
	ContinueTrimmed
)

func (m ContinueMode) String() string {
	switch m {
	case ContinueCompat:
		return "compat"
	case ContinueTrimmed:
		return "trimmed"
	default:
		return fmt.Sprintf("ContinueMode(%d)", int(m))
	}
}

type options struct {
	continueMode ContinueMode
}

// Option configures Decode.
type Option func(*options)

// WithContinueMode sets the sound continue accounting. The default is
// ContinueCompat.
func WithContinueMode(m ContinueMode) Option {
	return func(o *options) { o.continueMode = m }
}

type decoder struct {
	data []byte
	opts options
	out  *sound.Builder
}

// Decode parses a complete VOC container. On failure no buffer is returned.
func Decode(data []byte, opts ...Option) (*sound.Buffer, error) {
	d := decoder{data: data}
	for _, opt := range opts {
		opt(&d.opts)
	}

	return d.run()
}

func (d *decoder) run() (*sound.Buffer, error) {
	if _, err := Walk(d.data, d.block); err != nil {
		return nil, err
	}

	// A block stream that is empty without a terminator never reached block.
	if d.out == nil {
		d.out = sound.NewBuilder(0)
	}

	return d.out.Finish(), nil
}

func (d *decoder) block(b Block) error {
	// The builder is created once the header has been accepted. Most of a
	// container is sample data.
	if d.out == nil {
		d.out = sound.NewBuilder(len(d.data))
	}

	switch b.Type {
	case Terminator, Marker, Text:
		return nil
	case SoundData:
		return d.soundData(b)
	case SoundContinue:
		return d.soundContinue(b)
	case Silence:
		// The divisor byte only feeds a rate that is never stored.
		if err := b.need(2); err != nil {
			return err
		}
		count, _ := b.Word()
		d.out.AppendFill(int(count), utils.SilenceU8)
	case RepeatStart:
		// The repeat count is ignored; loops run once per mixer request.
		d.out.MarkLoopStart()
	case RepeatEnd:
		d.out.MarkLoopEnd()
	default:
		return fmt.Errorf("%w: tag %d at offset %d", ErrUnknownBlockType, uint8(b.Type), b.Offset)
	}

	return nil
}

func (d *decoder) soundData(b Block) error {
	if err := b.need(max(b.Length, 2)); err != nil {
		return err
	}

	if codec, _ := b.Codec(); codec != CodecPCM8 {
		return fmt.Errorf("%w: %s at offset %d", ErrUnsupportedCodec, codec, b.Offset)
	}

	rate, _ := b.SampleRate()
	d.out.SetSampleRate(rate)
	d.out.Append(b.Payload[2:])

	return nil
}

func (d *decoder) soundContinue(b Block) error {
	start := b.Offset + 4 + 2

	switch d.opts.continueMode {
	case ContinueTrimmed:
		if err := b.need(b.Length); err != nil {
			return err
		}
		if b.Length > 2 {
			d.out.Append(b.Payload[2:])
		}
	default:
		if start < len(d.data) {
			d.out.Append(d.data[start:min(start+b.Length, len(d.data))])
		}
	}

	return nil
}

// Decoder adapts Decode to the audio.Decoder interface so VOC can sit in an
// audio.Registry next to the other formats. The returned Source plays the
// buffer once.
type Decoder struct {
	Options []Option
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading voc data: %w", err)
	}

	buf, err := Decode(data, d.Options...)
	if err != nil {
		return nil, err
	}

	return sound.NewStream(buf, 0), nil
}
