package mandel

import "math"

// Intensity maps an escape count v under budget maxIter to a gray level:
//
//	round(255 · ln v / ln maxIter), clamped to [0, 255]
//
// Two inputs have no logarithm to work with and get fixed values:
// v ≤ 0 (including every count when maxIter is 0) maps to 0, and v ≥ maxIter
// maps to 255. The second rule also covers maxIter = 1, where ln maxIter is 0.
func Intensity(v, maxIter int) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= maxIter:
		return 255
	}

	x := math.Round(255 * math.Log(float64(v)) / math.Log(float64(maxIter)))
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}
