package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mod returns the non-negative remainder of x / m for m > 0
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// Fade returns the linear depth fade 1 - i/n clamped to [0, 1]
func Fade(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Clamp(1-float64(i)/float64(n), 0, 1)
}

// maxInt64Float is 2^63, the first float64 above the int64 range
const maxInt64Float = float64(math.MaxInt64)

// FloorInt64 returns floor(v) saturated to the int64 range; NaN maps to 0
func FloorInt64(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= maxInt64Float:
		return math.MaxInt64
	case v < -maxInt64Float:
		return math.MinInt64
	}
	return int64(math.Floor(v))
}
