// SPDX-License-Identifier: EPL-2.0

// Package playback sends decoded sounds to the speakers.
//
// PCMReader turns any audio.Source into signed 16-bit little-endian bytes.
// Output owns the ebitengine/oto context that plays them at a fixed mixer
// rate; sounds at other rates are resampled on the way.
//
//	out, err := playback.NewOutput(22050)
//	if err != nil {
//	    return err
//	}
//	err = out.Play(ctx, buf, 2) // loop region repeated twice
package playback
