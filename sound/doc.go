// SPDX-License-Identifier: EPL-2.0

// Package sound holds decoded, mixer-ready sample buffers.
//
// A Buffer is unsigned 8-bit mono PCM with a sample rate and an optional loop
// region expressed as byte offsets into the data. Buffers are produced by a
// Builder, which grows an append-only byte slice during decoding and hands it
// over without copying when Finish is called:
//
//	b := sound.NewBuilder(0)
//	b.SetSampleRate(11111)
//	b.Append(samples)
//	b.MarkLoopStart()
//	b.AppendFill(256, utils.SilenceU8)
//	b.MarkLoopEnd()
//	buf := b.Finish()
//
// Once finished a Buffer is read-only; Release drops its data.
//
// Capture turns any audio.Source into a Buffer by folding it to mono,
// optionally resampling, and quantising to unsigned 8-bit.
package sound
