// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"bytes"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	buf := New([]byte{1, 2, 3, 4}, 8000)

	if buf.Size() != 4 || buf.SampleRate() != 8000 {
		t.Fatalf("New() = size %d rate %d, want 4 and 8000", buf.Size(), buf.SampleRate())
	}
	if buf.Looping() || buf.LoopStart() != 0 || buf.LoopEnd() != 4 {
		t.Errorf("New() loop = [%d,%d) looping=%v, want [0,4) false", buf.LoopStart(), buf.LoopEnd(), buf.Looping())
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size int
		rate int
		want time.Duration
	}{
		{11025, 11025, time.Second},
		{5512, 11025, 499954648 * time.Nanosecond},
		{100, 0, 0},
		{0, 8000, 0},
	}

	for _, tt := range tests {
		got := New(make([]byte, tt.size), tt.rate).Duration()
		if got != tt.want {
			t.Errorf("Duration() size=%d rate=%d = %v, want %v", tt.size, tt.rate, got, tt.want)
		}
	}
}

func TestBuffer_LoopRegion(t *testing.T) {
	t.Parallel()

	b := NewBuilder(0)
	b.Append([]byte{1, 2})
	b.MarkLoopStart()
	b.Append([]byte{3, 4, 5})
	b.MarkLoopEnd()
	b.Append([]byte{6})

	if got := b.Finish().LoopRegion(); !bytes.Equal(got, []byte{3, 4, 5}) {
		t.Errorf("LoopRegion() = %v, want [3 4 5]", got)
	}
}

func TestBuffer_IntBuffer(t *testing.T) {
	t.Parallel()

	buf := New([]byte{0, 128, 255}, 11111)
	ib := buf.IntBuffer()

	if ib.Format.NumChannels != 1 || ib.Format.SampleRate != 11111 {
		t.Errorf("Format = %+v, want mono 11111 Hz", *ib.Format)
	}
	if ib.SourceBitDepth != 8 {
		t.Errorf("SourceBitDepth = %d, want 8", ib.SourceBitDepth)
	}

	want := []int{0, 128, 255}
	for i, v := range want {
		if ib.Data[i] != v {
			t.Errorf("Data[%d] = %d, want %d", i, ib.Data[i], v)
		}
	}
}

func TestBuffer_Release(t *testing.T) {
	t.Parallel()

	buf := New([]byte{1, 2, 3}, 8000)
	buf.Release()

	if buf.Data() != nil || buf.Size() != 0 || buf.LoopEnd() != 0 {
		t.Errorf("Release() left data=%v size=%d loopEnd=%d", buf.Data(), buf.Size(), buf.LoopEnd())
	}
}
