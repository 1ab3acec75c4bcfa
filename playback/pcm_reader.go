// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"

	"github.com/ik5/vocpbx/audio"
	"github.com/ik5/vocpbx/utils"
)

const (
	readChunk     = 2048
	maxEmptyReads = 100
)

// PCMReader encodes a Source as interleaved signed 16-bit little-endian PCM.
type PCMReader struct {
	src     audio.Source
	samples []float32
	encoded []byte
	pending []byte
	err     error
}

// NewPCMReader reads from src. The reader does not close src.
func NewPCMReader(src audio.Source) *PCMReader {
	chunk := max(readChunk-readChunk%max(src.Channels(), 1), 1)
	return &PCMReader{
		src:     src,
		samples: make([]float32, chunk),
		encoded: make([]byte, chunk*2),
	}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	n := 0
	empty := 0

	for n < len(p) {
		if len(r.pending) > 0 {
			c := copy(p[n:], r.pending)
			r.pending = r.pending[c:]
			n += c
			continue
		}

		if r.err != nil {
			break
		}

		m, err := r.src.ReadSamples(r.samples)
		for i, v := range r.samples[:m] {
			binary.LittleEndian.PutUint16(r.encoded[i*2:], uint16(utils.Float32ToInt16(v)))
		}
		r.pending = r.encoded[:m*2]

		if err != nil {
			r.err = err
			continue
		}

		if m == 0 {
			if n > 0 {
				break
			}
			empty++
			if empty >= maxEmptyReads {
				r.err = io.ErrNoProgress
			}
		}
	}

	if n == 0 && r.err != nil {
		return 0, r.err
	}

	return n, nil
}
