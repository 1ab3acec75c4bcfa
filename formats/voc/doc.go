// SPDX-License-Identifier: EPL-2.0

// Package voc decodes Creative Voice (VOC) containers into sound buffers.
//
// A VOC file is a 26-byte header followed by a stream of blocks. Each block
// starts with a one byte type tag; every type except the terminator carries a
// 24-bit little-endian payload length:
//
//	+------+------------+-------------------+
//	| type | length[3]  | payload[length]   |
//	+------+------------+-------------------+
//
// Only unsigned 8-bit PCM is supported, which covers every sound shipped
// with Dark Forces. The sample rate comes from the divisor byte of the first
// sound data block: 1000000 / (256 - divisor).
//
// # Decoding
//
//	data, _ := os.ReadFile("ELEVATOR.VOC")
//	buf, err := voc.Decode(data)
//	if err != nil {
//	    // errors.Is(err, voc.ErrUnsupportedCodec), ...
//	}
//	fmt.Println(buf.SampleRate(), buf.Size(), buf.LoopStart(), buf.LoopEnd())
//
// Repeat blocks mark a loop region in byte offsets. Without them the region
// spans the whole buffer and Looping reports false.
//
// # Continuation blocks
//
// Sound continue blocks are read 2 bytes into the payload. By default the
// number of copied bytes equals the declared block length, which reaches 2
// bytes past the block and reproduces existing game data exactly. Pass
// WithContinueMode(ContinueTrimmed) to copy length-2 bytes instead.
//
// # Inspecting
//
// Walk visits every block header without decoding samples, which is what the
// vocpbx info command uses.
//
// # Errors
//
//   - ErrMalformedContainer: empty or short input, bad data offset, truncated block
//   - ErrTruncatedBlock: wrapped by ErrMalformedContainer when a payload is cut short
//   - ErrUnsupportedCodec: sound data with a codec other than 8-bit PCM
//   - ErrUnknownBlockType: a type tag above 7
package voc
