package mandel

// EscapeRadius is the orbit magnitude at which a point counts as escaped.
const EscapeRadius = 2.0

// Escape returns the number of iterations of z ← z² + c, starting from
// z = 0, after which |z| ≥ EscapeRadius, or maxIter when the orbit stays
// inside the radius for the whole budget. The result is in [0, maxIter];
// a budget of 0 or less yields 0.
//
// Arithmetic is single precision and the magnitude test compares squared
// values, so no square root is taken.
func Escape(c complex64, maxIter int) int {
	const r2 = EscapeRadius * EscapeRadius

	var z complex64
	n := 0
	for n < maxIter {
		re, im := real(z), imag(z)
		if re*re+im*im >= r2 {
			break
		}
		z = z*z + c
		n++
	}
	return n
}
