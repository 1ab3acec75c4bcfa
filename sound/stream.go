// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"io"

	"github.com/ik5/vocpbx/utils"
)

// Forever makes a Stream repeat its loop region without end.
const Forever = -1

// Stream plays a Buffer as a mono audio.Source.
//
// When the buffer declares a non-empty loop region, reaching LoopEnd jumps
// back to LoopStart until the loop budget is spent; playback then runs on to
// the end of the data.
type Stream struct {
	buf   *Buffer
	pos   int
	loops int
}

// NewStream plays b, repeating its loop region loops extra times. Pass
// Forever for an endless loop and 0 to play straight through.
func NewStream(b *Buffer, loops int) *Stream {
	return &Stream{buf: b, loops: loops}
}

func (s *Stream) SampleRate() int { return s.buf.SampleRate() }
func (s *Stream) Channels() int   { return 1 }
func (s *Stream) Close() error    { return nil }

// Position is the byte offset of the next sample.
func (s *Stream) Position() int { return s.pos }

func (s *Stream) looping() bool {
	return s.loops != 0 && s.buf.Looping() && s.buf.LoopEnd() > s.buf.LoopStart()
}

func (s *Stream) ReadSamples(dst []float32) (int, error) {
	data := s.buf.Data()
	n := 0

	for n < len(dst) {
		if s.pos == s.buf.LoopEnd() && s.looping() {
			s.pos = s.buf.LoopStart()
			if s.loops > 0 {
				s.loops--
			}
			continue
		}

		if s.pos >= len(data) {
			break
		}

		limit := len(data)
		if s.looping() && s.pos < s.buf.LoopEnd() {
			limit = s.buf.LoopEnd()
		}

		chunk := data[s.pos:min(limit, s.pos+len(dst)-n)]
		for i, v := range chunk {
			dst[n+i] = utils.Uint8ToFloat32(v)
		}
		n += len(chunk)
		s.pos += len(chunk)
	}

	if n == 0 && len(dst) > 0 {
		return 0, io.EOF
	}

	return n, nil
}
