// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE structure
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding indicates a WAV that is not integer PCM
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")

	// ErrUnsupportedBitDepth indicates PCM other than 8 or 16 bit
	ErrUnsupportedBitDepth = errors.New("only 8-bit and 16-bit PCM WAV are supported")

	// ErrNoSampleRate indicates a buffer that cannot be exported
	ErrNoSampleRate = errors.New("sound buffer has no sample rate")
)
