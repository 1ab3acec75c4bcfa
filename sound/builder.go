// SPDX-License-Identifier: EPL-2.0

package sound

import "slices"

// Builder accumulates samples for a Buffer. Appends never move earlier bytes
// to different offsets, so loop marks taken mid-way stay valid.
//
// Growth relies on the runtime; an allocation failure is fatal to the
// process rather than an error.
type Builder struct {
	data       []byte
	sampleRate int
	rateSet    bool
	loopStart  int
	loopEnd    int
	looping    bool
	endMarked  bool
}

// NewBuilder returns an empty builder with room for sizeHint bytes.
func NewBuilder(sizeHint int) *Builder {
	return &Builder{data: make([]byte, 0, max(sizeHint, 0))}
}

// Len is the number of bytes appended so far.
func (b *Builder) Len() int { return len(b.data) }

// SampleRate returns the rate recorded so far, 0 if none.
func (b *Builder) SampleRate() int { return b.sampleRate }

// Append copies p onto the end of the buffer.
func (b *Builder) Append(p []byte) {
	b.data = append(b.data, p...)
}

// AppendFill appends n copies of v.
func (b *Builder) AppendFill(n int, v byte) {
	if n <= 0 {
		return
	}

	start := len(b.data)
	b.data = slices.Grow(b.data, n)[:start+n]
	fill := b.data[start:]
	for i := range fill {
		fill[i] = v
	}
}

// SetSampleRate records rate unless one was already set. It reports whether
// rate was applied.
func (b *Builder) SetSampleRate(rate int) bool {
	if b.rateSet {
		return false
	}

	b.sampleRate = rate
	b.rateSet = true
	return true
}

// MarkLoopStart opens the loop region at the current length.
func (b *Builder) MarkLoopStart() {
	b.loopStart = len(b.data)
	b.looping = true
}

// MarkLoopEnd closes the loop region at the current length.
func (b *Builder) MarkLoopEnd() {
	b.loopEnd = len(b.data)
	b.endMarked = true
}

// Finish applies loop defaults and transfers the data into a Buffer without
// copying. The builder is empty afterwards.
func (b *Builder) Finish() *Buffer {
	size := len(b.data)
	buf := &Buffer{
		data:       b.data,
		sampleRate: b.sampleRate,
		loopStart:  0,
		loopEnd:    size,
	}

	if b.looping {
		buf.looping = true
		buf.loopStart = b.loopStart
		// An end mark taken before the start mark, or none at all, loops to
		// the end of the data.
		if b.endMarked && b.loopEnd >= b.loopStart {
			buf.loopEnd = b.loopEnd
		}
	}

	*b = Builder{}
	return buf
}
