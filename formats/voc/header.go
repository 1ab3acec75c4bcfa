// SPDX-License-Identifier: EPL-2.0

package voc

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize is the size of the fixed prologue in bytes.
const HeaderSize = 26

// Header is the fixed VOC prologue.
type Header struct {
	Description [20]byte
	DataOffset  uint16 // start of the block stream
	Version     uint16 // major<<8 | minor
	ID          uint16
}

// ReadHeader parses the header at the start of data.
func ReadHeader(data []byte) (Header, error) {
	var h Header

	if len(data) == 0 {
		return h, fmt.Errorf("%w: empty input", ErrMalformedContainer)
	}
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: %d bytes is shorter than the %d byte header",
			ErrMalformedContainer, len(data), HeaderSize)
	}

	copy(h.Description[:], data[:20])
	h.DataOffset = binary.LittleEndian.Uint16(data[20:22])
	h.Version = binary.LittleEndian.Uint16(data[22:24])
	h.ID = binary.LittleEndian.Uint16(data[24:26])

	return h, nil
}

// Checksum reports whether ID is the complement of Version plus 0x1234, as
// written by Creative's tools. Decoding does not depend on it.
func (h Header) Checksum() bool {
	return h.ID == ^h.Version+0x1234
}

// Text returns the description without the EOF marker and padding.
func (h Header) Text() string {
	return strings.TrimRight(string(h.Description[:]), "\x1a\x00 ")
}

// VersionString formats Version as major.minor.
func (h Header) VersionString() string {
	return fmt.Sprintf("%d.%02d", h.Version>>8, h.Version&0xff)
}
