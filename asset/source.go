// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/klauspost/compress/zstd"
)

// ByteSource retrieves the raw bytes of a named asset inside a container.
// A missing asset yields an error wrapping ErrNotFound.
type ByteSource interface {
	ReadAsset(container, name string) ([]byte, error)
}

// ByteSourceFunc adapts a function to ByteSource.
type ByteSourceFunc func(container, name string) ([]byte, error)

func (f ByteSourceFunc) ReadAsset(container, name string) ([]byte, error) {
	return f(container, name)
}

// FSSource reads container/name from a file system. Each container is a
// directory holding its unpacked assets.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) ReadAsset(container, name string) ([]byte, error) {
	p := path.Join(container, name)

	data, err := fs.ReadFile(s.FS, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}

	return data, nil
}

// ZstdSource serves name+".zst", decompressed, when name itself is missing.
type ZstdSource struct {
	src ByteSource
	dec *zstd.Decoder
}

// NewZstdSource wraps src. Call Close to release the decoder.
func NewZstdSource(src ByteSource) (*ZstdSource, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}

	return &ZstdSource{src: src, dec: dec}, nil
}

func (s *ZstdSource) ReadAsset(container, name string) ([]byte, error) {
	data, err := s.src.ReadAsset(container, name)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return data, err
	}

	packed, zerr := s.src.ReadAsset(container, name+".zst")
	if zerr != nil {
		if errors.Is(zerr, ErrNotFound) {
			return nil, err
		}
		return nil, zerr
	}

	data, zerr = s.dec.DecodeAll(packed, nil)
	if zerr != nil {
		return nil, fmt.Errorf("decompressing %s/%s.zst: %w", container, name, zerr)
	}

	return data, nil
}

// Close releases the decoder. The source must not be used afterwards.
func (s *ZstdSource) Close() {
	s.dec.Close()
}
