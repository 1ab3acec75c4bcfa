// SPDX-License-Identifier: EPL-2.0

package voc

import (
	"encoding/binary"
	"fmt"
)

// BlockType is the tag that opens every block.
type BlockType uint8

const (
	Terminator BlockType = iota
	SoundData
	SoundContinue
	Silence
	Marker
	Text
	RepeatStart
	RepeatEnd
)

func (t BlockType) String() string {
	switch t {
	case Terminator:
		return "terminator"
	case SoundData:
		return "sound data"
	case SoundContinue:
		return "sound continue"
	case Silence:
		return "silence"
	case Marker:
		return "marker"
	case Text:
		return "text"
	case RepeatStart:
		return "repeat start"
	case RepeatEnd:
		return "repeat end"
	default:
		return fmt.Sprintf("block type %d", uint8(t))
	}
}

// Known reports whether t is one of the eight recognized tags.
func (t BlockType) Known() bool { return t <= RepeatEnd }

// Codec is the sample encoding id of a sound data block.
type Codec uint8

const (
	CodecPCM8    Codec = 0
	CodecADPCM4  Codec = 1
	CodecADPCM26 Codec = 2
	CodecADPCM2  Codec = 3
)

func (c Codec) String() string {
	switch c {
	case CodecPCM8:
		return "8-bit PCM"
	case CodecADPCM4:
		return "4-bit ADPCM"
	case CodecADPCM26:
		return "2.6-bit ADPCM"
	case CodecADPCM2:
		return "2-bit ADPCM"
	default:
		return fmt.Sprintf("codec %d", uint8(c))
	}
}

// SampleRate converts a divisor byte to samples per second.
func SampleRate(divisor byte) int {
	return 1000000 / (256 - int(divisor))
}

// Block is one entry of the block stream as seen by Walk.
type Block struct {
	Type BlockType
	// Offset of the type tag from the start of the input.
	Offset int
	// Length is the declared payload length. Zero for the terminator.
	Length int
	// Payload holds the declared payload, cut short if the input ends first.
	Payload []byte
}

// Truncated reports whether the input ended before the declared payload.
func (b Block) Truncated() bool { return len(b.Payload) < b.Length }

// SampleRate returns the rate encoded in a sound data or silence block.
func (b Block) SampleRate() (int, bool) {
	switch {
	case b.Type == SoundData && len(b.Payload) >= 1:
		return SampleRate(b.Payload[0]), true
	case b.Type == Silence && len(b.Payload) >= 3:
		return SampleRate(b.Payload[2]), true
	default:
		return 0, false
	}
}

// Codec returns the codec id of a sound data block.
func (b Block) Codec() (Codec, bool) {
	if b.Type != SoundData || len(b.Payload) < 2 {
		return 0, false
	}

	return Codec(b.Payload[1]), true
}

// Word returns the little-endian u16 that opens silence, marker and repeat
// payloads: the silence length, marker id or repeat count.
func (b Block) Word() (uint16, bool) {
	if len(b.Payload) < 2 {
		return 0, false
	}

	return binary.LittleEndian.Uint16(b.Payload), true
}

func (b Block) String() string {
	return fmt.Sprintf("%s @%d len=%d", b.Type, b.Offset, b.Length)
}

// need fails unless the payload holds at least n bytes.
func (b Block) need(n int) error {
	if len(b.Payload) >= n {
		return nil
	}

	return fmt.Errorf("%w: %s at offset %d needs %d bytes, %d available: %w",
		ErrMalformedContainer, b.Type, b.Offset, n, len(b.Payload), ErrTruncatedBlock)
}
