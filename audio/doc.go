// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives shared by the decoders.
//
// A Source is a pull-based stream of interleaved float32 samples in [-1, 1].
// Import decoders produce one, sound.Stream plays a decoded buffer as one,
// and the processors here wrap one:
//   - MonoMixer averages the channels of each frame into one sample
//   - Resampler converts to another rate with Catmull-Rom interpolation
//
// Chaining them turns any imported file into the 8-bit mono layout the
// mixer plays:
//
//	var src audio.Source = audio.NewMonoMixer(decoded)
//	src = audio.NewResampler(src, 11025)
//
// A Source signals its end by returning 0 samples with io.EOF.
//
// # Registry
//
// Registry maps format keys to decoders. Keys are case-insensitive and may
// carry a leading dot, so a file extension works directly:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// A Registry is safe for concurrent use. The processors are not.
package audio
