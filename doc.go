// SPDX-License-Identifier: EPL-2.0

// Package vocpbx loads game sound effects stored as Creative Voice (VOC)
// files and prepares them for a mixer.
//
// The heavy lifting lives in subpackages:
//   - formats/voc parses VOC containers into sound.Buffer values
//   - sound holds the 8-bit mono buffers, their builder and a looping stream
//   - asset fetches sounds by name and caches the decoded buffers
//   - playback sends buffers to the audio device
//   - formats/wav, formats/aiff, formats/mp3 and formats/vorbis import other
//     formats as replacement sounds
//
// This package ties them together for the common cases.
//
// # Quick Start
//
//	buf, err := vocpbx.LoadFile("DOOR.VOC")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(buf.Size(), buf.SampleRate(), buf.LoopStart(), buf.LoopEnd())
//
// LoadFile picks a decoder from the file extension. VOC files decode
// directly; WAV, AIFF, MP3 and Ogg Vorbis are mixed to mono and quantized to
// unsigned 8-bit at their native rate.
//
// # Caching
//
// For a game that asks for the same sounds repeatedly, use an asset.Cache:
//
//	cache := asset.NewCache(asset.FSSource{FS: os.DirFS(root)},
//	    asset.WithRegistry(vocpbx.DefaultRegistry()))
//	door, ok := cache.Get("DOOR.VOC")
package vocpbx
