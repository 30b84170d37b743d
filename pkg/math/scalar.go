package math

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1]. NaN maps to 0.
func Clamp01(x float32) float32 {
	if x != x {
		return 0
	}
	return Clamp(x, 0, 1)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Smoothstep returns the cubic Hermite ease 3t²-2t³ of x over [edge0, edge1].
// The result is exactly 0 at or below edge0 and exactly 1 at or above edge1.
func Smoothstep(x, edge0, edge1 float32) float32 {
	if x <= edge0 {
		return 0
	}
	if x >= edge1 {
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	return t * t * (3 - 2*t)
}

// Cos is math.Cos for float32 callers.
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Pi as float32.
const Pi = float32(math.Pi)
