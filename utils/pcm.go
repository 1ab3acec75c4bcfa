// SPDX-License-Identifier: EPL-2.0

package utils

// SilenceU8 is the zero-crossing level of unsigned 8-bit PCM.
const SilenceU8 = 128

// Float32ToUint8 converts a sample in [-1,1] to unsigned 8-bit PCM.
// Values outside the range are clamped.
func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := int(x*127.0) + SilenceU8
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Uint8ToFloat32 converts unsigned 8-bit PCM to a sample in [-1,1).
func Uint8ToFloat32(b uint8) float32 {
	return float32(int(b)-SilenceU8) / 128.0
}

// Int16ToFloat32 converts signed 16-bit PCM to a sample in [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 converts a sample in [-1,1] to signed 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}
