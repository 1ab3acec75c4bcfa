// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate returns the Catmull-Rom spline value between p1 and p2 at
// fraction t in [0,1]. p0 and p3 are the neighbouring samples.
func CubicInterpolate(p0, p1, p2, p3, t float32) float32 {
	t2 := t * t
	t3 := t2 * t

	return 0.5 * ((2 * p1) +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-p0-3*p2+p3)*t3)
}
