// SPDX-License-Identifier: EPL-2.0

// Package asset fetches sound assets by name and caches their decoded
// buffers.
//
// A ByteSource resolves (container, name) to raw bytes. FSSource reads a
// directory of unpacked containers through an fs.FS, ZstdSource adds
// transparent ".zst" fallbacks, and ByteSourceFunc adapts any function.
//
// Cache sits on top of a ByteSource. The first Get of a name fetches and
// decodes it; later calls return the same *sound.Buffer until ReleaseAll.
// Failures are never cached, so a later Get retries.
//
//	src := asset.FSSource{FS: os.DirFS("/games/dark")}
//	cache := asset.NewCache(src)
//
//	door, ok := cache.Get("DOOR.VOC")
//	if !ok {
//	    // missing or corrupt, play nothing
//	}
//
// A Cache is not safe for concurrent use.
package asset
