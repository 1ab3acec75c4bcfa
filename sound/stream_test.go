// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"io"
	"testing"

	"github.com/ik5/vocpbx/utils"
)

func loopedBuffer() *Buffer {
	b := NewBuilder(0)
	b.SetSampleRate(11111)
	b.Append([]byte{0, 1, 2})
	b.MarkLoopStart()
	b.Append([]byte{3, 4, 5})
	b.MarkLoopEnd()
	b.Append([]byte{6, 7, 8, 9})
	return b.Finish()
}

// drain reads s in small chunks and maps samples back to bytes.
func drain(t *testing.T, s *Stream, limit int) []byte {
	t.Helper()

	var out []byte
	buf := make([]float32, 4)
	for len(out) < limit {
		n, err := s.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, byte(int(v*128)+utils.SilenceU8))
		}
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	return out
}

func TestStream_Loops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		loops int
		want  []byte
	}{
		{"straight through", 0, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"one repeat", 1, []byte{0, 1, 2, 3, 4, 5, 3, 4, 5, 6, 7, 8, 9}},
		{"two repeats", 2, []byte{0, 1, 2, 3, 4, 5, 3, 4, 5, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := drain(t, NewStream(loopedBuffer(), tt.loops), 100)
			if string(got) != string(tt.want) {
				t.Errorf("stream = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStream_Forever(t *testing.T) {
	t.Parallel()

	got := drain(t, NewStream(loopedBuffer(), Forever), 30)
	if len(got) < 30 {
		t.Fatalf("Forever stream ended after %d samples", len(got))
	}

	for i, v := range got[3:30] {
		if want := byte(3 + i%3); v != want {
			t.Fatalf("sample %d = %d, want %d", i+3, v, want)
		}
	}
}

func TestStream_NonLoopingBufferIgnoresLoops(t *testing.T) {
	t.Parallel()

	buf := New([]byte{128, 128, 128}, 8000)
	got := drain(t, NewStream(buf, Forever), 100)

	if len(got) != 3 {
		t.Errorf("got %d samples, want 3", len(got))
	}
}

func TestStream_EmptyLoopRegion(t *testing.T) {
	t.Parallel()

	b := NewBuilder(0)
	b.Append([]byte{1, 2})
	b.MarkLoopStart()
	b.MarkLoopEnd()
	b.Append([]byte{3})

	got := drain(t, NewStream(b.Finish(), Forever), 100)
	if len(got) != 3 {
		t.Errorf("got %d samples, want 3", len(got))
	}
}

func TestStream_Metadata(t *testing.T) {
	t.Parallel()

	s := NewStream(loopedBuffer(), 0)
	if s.SampleRate() != 11111 || s.Channels() != 1 {
		t.Errorf("metadata = %d Hz %d ch, want 11111 Hz 1 ch", s.SampleRate(), s.Channels())
	}

	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestStream_Position(t *testing.T) {
	t.Parallel()

	s := NewStream(loopedBuffer(), 1)
	buf := make([]float32, 4)

	steps := []int{
		4,  // 0 1 2 3
		5,  // 4 5, jump back, 3 4
		9,  // 5 6 7 8
		10, // 9
	}
	for i, want := range steps {
		if _, err := s.ReadSamples(buf); err != nil {
			t.Fatalf("read %d: ReadSamples() error = %v", i, err)
		}
		if got := s.Position(); got != want {
			t.Errorf("read %d: Position() = %d, want %d", i, got, want)
		}
	}

	if _, err := s.ReadSamples(buf); err != io.EOF {
		t.Errorf("ReadSamples() after end error = %v, want io.EOF", err)
	}
	if got := s.Position(); got != 10 {
		t.Errorf("Position() at end = %d, want 10", got)
	}
}
