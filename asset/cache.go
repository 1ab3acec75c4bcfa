// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/ik5/vocpbx/audio"
	"github.com/ik5/vocpbx/formats/voc"
	"github.com/ik5/vocpbx/sound"
)

// DefaultContainer holds the game's sound effects.
const DefaultContainer = "SOUNDS.GOB"

// Cache maps sound names to decoded buffers.
type Cache struct {
	src         ByteSource
	container   string
	logger      *log.Logger
	registry    *audio.Registry
	vocOpts     []voc.Option
	captureRate int
	entries     map[string]*sound.Buffer
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithContainer selects the container passed to the byte source.
func WithContainer(id string) CacheOption {
	return func(c *Cache) { c.container = id }
}

// WithLogger sets where hits, misses and failures are reported.
func WithLogger(l *log.Logger) CacheOption {
	return func(c *Cache) { c.logger = l }
}

// WithRegistry enables assets in other formats. Names whose extension is
// registered are decoded with that decoder and captured to 8-bit mono.
func WithRegistry(r *audio.Registry) CacheOption {
	return func(c *Cache) { c.registry = r }
}

// WithVOCOptions passes options to every VOC decode.
func WithVOCOptions(opts ...voc.Option) CacheOption {
	return func(c *Cache) { c.vocOpts = opts }
}

// WithCaptureRate resamples assets decoded through the registry to hz.
// Zero keeps their native rate.
func WithCaptureRate(hz int) CacheOption {
	return func(c *Cache) { c.captureRate = hz }
}

// NewCache returns an empty cache reading from src.
func NewCache(src ByteSource, opts ...CacheOption) *Cache {
	c := &Cache{
		src:       src,
		container: DefaultContainer,
		entries:   make(map[string]*sound.Buffer),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	return c
}

// Get returns the buffer for name, fetching and decoding it on first use.
// Any failure yields nil, false and leaves the cache unchanged.
func (c *Cache) Get(name string) (*sound.Buffer, bool) {
	b, err := c.Load(name)
	if err != nil {
		return nil, false
	}

	return b, true
}

// Load is Get with the failure reason.
func (c *Cache) Load(name string) (*sound.Buffer, error) {
	if b, ok := c.entries[name]; ok {
		c.logger.Debug("sound cache hit", "name", name)
		return b, nil
	}

	c.logger.Debug("sound cache miss", "name", name, "container", c.container)

	data, err := c.src.ReadAsset(c.container, name)
	if err != nil {
		c.logger.Debug("sound load failed", "name", name, "err", err)
		return nil, err
	}

	return c.store(name, data)
}

// Decode caches the sound decoded from data under name, for callers that
// already hold the asset bytes. A name that is already cached returns the
// cached buffer and data is ignored.
func (c *Cache) Decode(name string, data []byte) (*sound.Buffer, error) {
	if b, ok := c.entries[name]; ok {
		c.logger.Debug("sound cache hit", "name", name)
		return b, nil
	}

	return c.store(name, data)
}

func (c *Cache) store(name string, data []byte) (*sound.Buffer, error) {
	b, err := c.decode(name, data)
	if err != nil {
		c.logger.Debug("sound load failed", "name", name, "err", err)
		return nil, err
	}

	c.entries[name] = b
	c.logger.Debug("sound loaded", "name", name,
		"size", b.Size(), "rate", b.SampleRate(), "looping", b.Looping())

	return b, nil
}

func (c *Cache) decode(name string, data []byte) (*sound.Buffer, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" || ext == ".voc" {
		b, err := voc.Decode(data, c.vocOpts...)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return b, nil
	}

	if c.registry == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	dec, ok := c.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	defer src.Close()

	b, err := sound.Capture(src, c.captureRate)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return b, nil
}

// ReleaseAll releases every cached buffer and empties the cache. Buffers
// handed out earlier must not be used afterwards.
func (c *Cache) ReleaseAll() {
	if len(c.entries) == 0 {
		return
	}

	count := len(c.entries)
	var total uint64
	for name, b := range c.entries {
		total += uint64(b.Size())
		b.Release()
		delete(c.entries, name)
	}

	c.logger.Info("released sounds", "count", count, "bytes", humanize.Bytes(total))
}

// Len is the number of cached buffers.
func (c *Cache) Len() int { return len(c.entries) }

// Names lists cached sound names in sorted order.
func (c *Cache) Names() []string {
	return slices.Sorted(maps.Keys(c.entries))
}
