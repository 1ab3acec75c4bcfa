// SPDX-License-Identifier: EPL-2.0

package voc

import (
	"errors"
	"fmt"
)

// Walk parses the header and calls fn for every block in stream order,
// including a closing terminator. The walk ends at the terminator, at the end
// of input, or when fn returns an error. Unknown block types are passed to fn
// as is.
//
// The cursor advances by each block's declared length no matter how much of
// the payload fn looked at.
func Walk(data []byte, fn func(Block) error) (Header, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return h, err
	}

	pos := int(h.DataOffset)
	if pos < HeaderSize || pos > len(data) {
		return h, fmt.Errorf("%w: data offset %d outside [%d,%d]",
			ErrMalformedContainer, pos, HeaderSize, len(data))
	}

	for pos < len(data) {
		blk := Block{Type: BlockType(data[pos]), Offset: pos}
		pos++

		if blk.Type == Terminator {
			return h, stopped(fn(blk))
		}

		if len(data)-pos < 3 {
			return h, fmt.Errorf("%w: %s at offset %d has a cut length field: %w",
				ErrMalformedContainer, blk.Type, blk.Offset, ErrTruncatedBlock)
		}
		blk.Length = int(data[pos]) | int(data[pos+1])<<8 | int(data[pos+2])<<16
		pos += 3

		blk.Payload = data[pos:min(pos+blk.Length, len(data))]

		if err := fn(blk); err != nil {
			return h, stopped(err)
		}

		pos += blk.Length
	}

	return h, nil
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}

	return err
}
