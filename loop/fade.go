// SPDX-License-Identifier: EPL-2.0

package loop

// Scale is the linear fade-out gain for frame i of a fade window of length
// fade: 1 at the first frame, decreasing by 1/fade per frame and never
// reaching zero inside the window. Callers guarantee 0 <= i < fade.
func Scale(i, fade int) float64 {
	return 1.0 - float64(i)/float64(fade)
}

// FadeFrames converts a fade duration in seconds to frames at rate Hz.
// The product is truncated; non-positive inputs yield 0.
func FadeFrames(seconds float64, rate int) int {
	if seconds <= 0 || rate <= 0 {
		return 0
	}
	return int(seconds * float64(rate))
}

func attenuate(s int16, scale float64) int16 {
	return int16(float64(s) * scale)
}
