// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"reflect"
	"testing"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	return newConstantSource(8000, 1, 10, 0), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wav := &stubDecoder{name: "wav"}
	mp3 := &stubDecoder{name: "mp3"}

	registry.Register("wav", wav)
	registry.Register("MP3", mp3)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wav, true},
		{".wav", wav, true},
		{"WAV", wav, true},
		{"mp3", mp3, true},
		{".Mp3", mp3, true},
		{"flac", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%q) returned a different decoder", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}

	registry.Register("ogg", first)
	registry.Register("ogg", second)

	got, _ := registry.Get("ogg")
	if got != second {
		t.Error("Register() did not replace the previous decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", ".wav", "AIFF", "mp3"} {
		registry.Register(f, &stubDecoder{name: f})
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := registry.Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan struct{})

	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			registry.Register("wav", &stubDecoder{name: string(rune('a' + i))})
			_, _ = registry.Get("wav")
		}()
	}

	for range 8 {
		<-done
	}

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Get() after concurrent Register() found nothing")
	}
}
