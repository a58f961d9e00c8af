// SPDX-License-Identifier: EPL-2.0

package audiotest

// Ramp returns n samples counting up from start.
func Ramp(start int16, n int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = start + int16(i)
	}
	return s
}

// Negate returns a copy of s with every sample sign-flipped.
func Negate(s []int16) []int16 {
	out := make([]int16, len(s))
	for i, v := range s {
		out[i] = -v
	}
	return out
}
