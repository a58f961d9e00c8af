// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const pcm16Divisor float32 = 32768.0

// Float32ToInt16 converts a normalized sample to 16-bit PCM. It is the exact
// inverse of Int16ToFloat32: the value is scaled by 32768, rounded to the
// nearest integer and clamped to [math.MinInt16, math.MaxInt16].
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * float64(pcm16Divisor))
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a float in [-1, 1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / pcm16Divisor
}

// Float32SliceToInt16 converts src into dst and returns the number of
// samples written, which is min(len(dst), len(src)).
func Float32SliceToInt16(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}

	return n
}

// IntToFloat32 normalizes an integer PCM sample of the given bit depth
// to [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v) / 128.0
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(float64(v) / 2147483648.0)
	default:
		return float32(v) / pcm16Divisor
	}
}
