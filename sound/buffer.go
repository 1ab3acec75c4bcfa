// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"time"

	goaudio "github.com/go-audio/audio"
)

// Buffer is a finalized unsigned 8-bit mono sample buffer.
//
// 0 <= LoopStart() <= LoopEnd() <= Size() always holds. Without a declared
// loop the region covers the whole buffer and Looping reports false.
type Buffer struct {
	data       []byte
	sampleRate int
	loopStart  int
	loopEnd    int
	looping    bool
}

// New wraps data as a non-looping buffer. The buffer takes ownership of data.
func New(data []byte, sampleRate int) *Buffer {
	return &Buffer{
		data:       data,
		sampleRate: sampleRate,
		loopEnd:    len(data),
	}
}

func (b *Buffer) Data() []byte    { return b.data }
func (b *Buffer) Size() int       { return len(b.data) }
func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) LoopStart() int  { return b.loopStart }
func (b *Buffer) LoopEnd() int    { return b.loopEnd }
func (b *Buffer) Looping() bool   { return b.looping }

// LoopRegion returns the samples between LoopStart and LoopEnd.
func (b *Buffer) LoopRegion() []byte { return b.data[b.loopStart:b.loopEnd] }

// Duration is the playback length at the buffer's sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}

	return time.Duration(len(b.data)) * time.Second / time.Duration(b.sampleRate)
}

// IntBuffer exposes the samples as a go-audio buffer holding unsigned 8-bit
// values, suitable for the go-audio encoders.
func (b *Buffer) IntBuffer() *goaudio.IntBuffer {
	ints := make([]int, len(b.data))
	for i, v := range b.data {
		ints[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  b.sampleRate,
		},
		Data:           ints,
		SourceBitDepth: 8,
	}
}

// Release drops the sample data. The buffer must not be used afterwards.
func (b *Buffer) Release() {
	*b = Buffer{}
}
