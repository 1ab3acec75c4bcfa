// SPDX-License-Identifier: EPL-2.0

package vocpbx

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/vocpbx/formats/voc"
	"github.com/ik5/vocpbx/formats/wav"
	"github.com/ik5/vocpbx/internal/audiotest"
	"github.com/ik5/vocpbx/internal/voctest"
	"github.com/ik5/vocpbx/sound"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "mp3", "ogg", "voc", "wav"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestLoad_VOC(t *testing.T) {
	t.Parallel()

	data := voctest.New().
		SoundData(166, 0, voctest.Ramp(0, 10)).
		RepeatStart(0).
		Silence(5, 166).
		RepeatEnd().
		Terminator().
		Bytes()

	for _, format := range []string{"", "voc", ".VOC"} {
		buf, err := Load(bytes.NewReader(data), format)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", format, err)
		}
		if buf.Size() != 15 || buf.LoopStart() != 10 || buf.LoopEnd() != 15 || !buf.Looping() {
			t.Errorf("Load(%q) = %d bytes loop [%d,%d) %v", format, buf.Size(), buf.LoopStart(), buf.LoopEnd(), buf.Looping())
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(bytes.NewReader(nil), "voc"); !errors.Is(err, voc.ErrMalformedContainer) {
		t.Errorf("Load(empty) error = %v, want ErrMalformedContainer", err)
	}

	if _, err := Load(bytes.NewReader([]byte{1}), "flac"); err == nil || !strings.Contains(err.Error(), "flac") {
		t.Errorf("Load(flac) error = %v, want unsupported format", err)
	}

	if _, err := Load(bytes.NewReader([]byte("junk")), "wav"); !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("Load(junk wav) error = %v, want ErrNotWavFile", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	vocPath := filepath.Join(dir, "DOOR.VOC")
	if err := os.WriteFile(vocPath, voctest.New().SoundData(131, 0, []byte{1, 2, 3}).Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	buf, err := LoadFile(vocPath)
	if err != nil {
		t.Fatalf("LoadFile(voc) error = %v", err)
	}
	if buf.Size() != 3 || buf.SampleRate() != 8000 {
		t.Errorf("LoadFile(voc) = %d bytes at %d Hz", buf.Size(), buf.SampleRate())
	}

	wavPath := filepath.Join(dir, "beep.wav")
	f, err := os.Create(wavPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.WriteSoundBuffer(f, sound.New([]byte{128, 255, 0, 128}, 11025)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	buf, err = LoadFile(wavPath)
	if err != nil {
		t.Fatalf("LoadFile(wav) error = %v", err)
	}
	if buf.Size() != 4 || buf.SampleRate() != 11025 || buf.Looping() {
		t.Errorf("LoadFile(wav) = %d bytes at %d Hz looping=%v", buf.Size(), buf.SampleRate(), buf.Looping())
	}
	if buf.Data()[0] != 128 {
		t.Errorf("silence sample = %d, want 128", buf.Data()[0])
	}

	if _, err := LoadFile(filepath.Join(dir, "GONE.VOC")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "BAD.VOC")
	if err := os.WriteFile(bad, []byte("Creative"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), "BAD.VOC") {
		t.Errorf("LoadFile(bad) error = %v, want it to name the file", err)
	}
}

func TestToPCM8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		frames   int
		target   int
		wantRate int
		wantSize int
	}{
		{"mono native rate", 11025, 1, 1000, 0, 11025, 1000},
		{"stereo native rate", 8000, 2, 800, 0, 8000, 800},
		{"stereo upsampled", 8000, 2, 800, 16000, 16000, 1600},
		{"same target", 22050, 1, 500, 22050, 22050, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(tt.rate, tt.channels, tt.frames, -0.5)

			buf, err := ToPCM8(src, tt.target)
			if err != nil {
				t.Fatalf("ToPCM8() error = %v", err)
			}
			if buf.SampleRate() != tt.wantRate || buf.Size() != tt.wantSize {
				t.Errorf("ToPCM8() = %d bytes at %d Hz, want %d bytes at %d Hz",
					buf.Size(), buf.SampleRate(), tt.wantSize, tt.wantRate)
			}
			if buf.Data()[buf.Size()/2] != 65 {
				t.Errorf("mid sample = %d, want 65", buf.Data()[buf.Size()/2])
			}
		})
	}
}
