// SPDX-License-Identifier: EPL-2.0

// Package voctest assembles synthetic VOC containers for tests.
package voctest

import (
	"encoding/binary"
)

// Description is the standard 20-byte VOC signature.
const Description = "Creative Voice File\x1a"

// HeaderSize is the size of the fixed VOC prologue.
const HeaderSize = 26

// Block type tags.
const (
	Terminator    byte = 0
	SoundData     byte = 1
	SoundContinue byte = 2
	Silence       byte = 3
	Marker        byte = 4
	Text          byte = 5
	RepeatStart   byte = 6
	RepeatEnd     byte = 7
)

// Builder appends blocks after a standard header. Methods chain.
type Builder struct {
	offset  uint16
	version uint16
	id      uint16
	blocks  []byte
}

// New returns a builder for a version 1.10 container whose block stream
// starts right after the header.
func New() *Builder {
	var version uint16 = 0x010a
	return &Builder{
		offset:  HeaderSize,
		version: version,
		id:      Checksum(version),
	}
}

// Checksum is the header id matching version.
func Checksum(version uint16) uint16 {
	return ^version + 0x1234
}

// DataOffset moves the block stream start. Bytes between the header and the
// offset are zero filled.
func (b *Builder) DataOffset(off uint16) *Builder {
	b.offset = off
	return b
}

// Version overrides the version and id header fields.
func (b *Builder) Version(version, id uint16) *Builder {
	b.version = version
	b.id = id
	return b
}

// Block appends a block with an explicit type and payload.
func (b *Builder) Block(typ byte, payload []byte) *Builder {
	n := len(payload)
	b.blocks = append(b.blocks, typ, byte(n), byte(n>>8), byte(n>>16))
	b.blocks = append(b.blocks, payload...)
	return b
}

// SoundData appends a type 1 block.
func (b *Builder) SoundData(divisor, codec byte, samples []byte) *Builder {
	payload := append([]byte{divisor, codec}, samples...)
	return b.Block(SoundData, payload)
}

// Continue appends a type 2 block carrying payload verbatim.
func (b *Builder) Continue(payload []byte) *Builder {
	return b.Block(SoundContinue, payload)
}

// Silence appends a type 3 block.
func (b *Builder) Silence(count uint16, divisor byte) *Builder {
	payload := binary.LittleEndian.AppendUint16(nil, count)
	return b.Block(Silence, append(payload, divisor))
}

// Marker appends a type 4 block.
func (b *Builder) Marker(id uint16) *Builder {
	return b.Block(Marker, binary.LittleEndian.AppendUint16(nil, id))
}

// Text appends a type 5 block.
func (b *Builder) Text(s string) *Builder {
	return b.Block(Text, append([]byte(s), 0))
}

// RepeatStart appends a type 6 block.
func (b *Builder) RepeatStart(count uint16) *Builder {
	return b.Block(RepeatStart, binary.LittleEndian.AppendUint16(nil, count))
}

// RepeatEnd appends a type 7 block.
func (b *Builder) RepeatEnd() *Builder {
	return b.Block(RepeatEnd, nil)
}

// Terminator appends the end-of-stream tag.
func (b *Builder) Terminator() *Builder {
	b.blocks = append(b.blocks, Terminator)
	return b
}

// Raw appends bytes as is.
func (b *Builder) Raw(p ...byte) *Builder {
	b.blocks = append(b.blocks, p...)
	return b
}

// Bytes returns the assembled container.
func (b *Builder) Bytes() []byte {
	out := make([]byte, 0, int(b.offset)+len(b.blocks))
	out = append(out, Description...)
	out = binary.LittleEndian.AppendUint16(out, b.offset)
	out = binary.LittleEndian.AppendUint16(out, b.version)
	out = binary.LittleEndian.AppendUint16(out, b.id)

	for len(out) < int(b.offset) {
		out = append(out, 0)
	}

	return append(out, b.blocks...)
}

// Ramp returns n bytes counting up from start.
func Ramp(start byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = start + byte(i)
	}
	return out
}
