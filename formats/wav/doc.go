// SPDX-License-Identifier: EPL-2.0

// Package wav reads WAV files into audio sources and writes sound buffers
// back out as WAV.
//
// Reading and writing go through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM with 8 or 16 bits per sample and any channel
// count:
//
//	f, _ := os.Open("door.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// 8-bit data is unsigned with 128 as the zero line; 16-bit data is signed.
// Both are scaled to [-1, 1]. Register the decoder in an audio.Registry
// under "wav" to let an asset cache load WAV files next to VOC containers.
//
// # Exporting
//
// WriteSoundBuffer stores a sound.Buffer as a mono 8-bit WAV at the buffer's
// sample rate:
//
//	out, _ := os.Create("door.wav")
//	err := wav.WriteSoundBuffer(out, buf)
//
// Loop points have no place in a plain WAV and are dropped.
package wav
