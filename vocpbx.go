// SPDX-License-Identifier: EPL-2.0

package vocpbx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/vocpbx/audio"
	"github.com/ik5/vocpbx/formats/aiff"
	"github.com/ik5/vocpbx/formats/mp3"
	"github.com/ik5/vocpbx/formats/voc"
	"github.com/ik5/vocpbx/formats/vorbis"
	"github.com/ik5/vocpbx/formats/wav"
	"github.com/ik5/vocpbx/sound"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("voc", voc.Decoder{})
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// Load decodes r as format, a registry key or file extension. VOC input keeps
// its loop region; other formats become a non-looping buffer at their native
// rate.
func Load(r io.Reader, format string, opts ...voc.Option) (*sound.Buffer, error) {
	if key := strings.TrimPrefix(format, "."); key == "" || strings.EqualFold(key, "voc") {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading voc data: %w", err)
		}
		return voc.Decode(data, opts...)
	}

	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ToPCM8(src, 0)
}

// LoadFile is Load on the file at path, using its extension as the format.
func LoadFile(path string, opts ...voc.Option) (*sound.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	buf, err := Load(bytes.NewReader(data), filepath.Ext(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return buf, nil
}

// ToPCM8 collects src into an unsigned 8-bit mono buffer. Channels are
// averaged, and when targetRate is positive the audio is resampled to it with
// cubic interpolation. src is not closed.
func ToPCM8(src audio.Source, targetRate int) (*sound.Buffer, error) {
	buf, err := sound.Capture(src, targetRate)
	if err != nil {
		return nil, fmt.Errorf("converting to 8-bit pcm: %w", err)
	}

	return buf, nil
}
