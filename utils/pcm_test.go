// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToUint8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  uint8
	}{
		{"silence", 0, 128},
		{"max positive", 1, 255},
		{"max negative", -1, 1},
		{"half positive", 0.5, 191},
		{"half negative", -0.5, 65},
		{"clamp over max", 3, 255},
		{"clamp under min", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToUint8(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToUint8(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestUint8ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input uint8
		want  float32
	}{
		{128, 0},
		{0, -1},
		{255, 127.0 / 128.0},
		{192, 0.5},
	}

	for _, tt := range tests {
		if got := Uint8ToFloat32(tt.input); got != tt.want {
			t.Errorf("Uint8ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestUint8RoundTrip(t *testing.T) {
	t.Parallel()

	// Every byte survives a trip through float32 within one step.
	for i := range 256 {
		b := uint8(i)
		got := Float32ToUint8(Uint8ToFloat32(b))
		if diff := math.Abs(float64(int(got) - int(b))); diff > 1 {
			t.Errorf("round trip %d -> %d (diff %v)", b, got, diff)
		}
	}
}

func TestInt16Conversions(t *testing.T) {
	t.Parallel()

	if got := Int16ToFloat32(math.MinInt16); got != -1 {
		t.Errorf("Int16ToFloat32(MinInt16) = %v, want -1", got)
	}

	if got := Int16ToFloat32(0); got != 0 {
		t.Errorf("Int16ToFloat32(0) = %v, want 0", got)
	}

	if got := Float32ToInt16(1); got != math.MaxInt16 {
		t.Errorf("Float32ToInt16(1) = %d, want %d", got, math.MaxInt16)
	}

	if got := Float32ToInt16(-2); got != -math.MaxInt16 {
		t.Errorf("Float32ToInt16(-2) = %d, want %d", got, -math.MaxInt16)
	}

	prev := Float32ToInt16(-1)
	for f := float32(-0.99); f <= 1; f += 0.01 {
		cur := Float32ToInt16(f)
		if cur < prev {
			t.Fatalf("Float32ToInt16 not monotonic at %v: %d < %d", f, cur, prev)
		}
		prev = cur
	}
}

func BenchmarkFloat32ToUint8(b *testing.B) {
	samples := make([]float32, 11025)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.05))
	}
	out := make([]uint8, len(samples))

	b.ReportAllocs()
	for range b.N {
		for j, s := range samples {
			out[j] = Float32ToUint8(s)
		}
	}
}
