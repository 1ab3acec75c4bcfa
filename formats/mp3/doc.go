// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio sources using
// github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels, since go-mp3 expands mono
// frames to stereo. Feed the source through audio.MonoMixer or
// sound.Capture to fold it back to one channel.
package mp3
