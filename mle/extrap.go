package mle

import "github.com/zghodsi/safetynets-gkr/field"

// Extrap performs Lagrange interpolation: given n samples of a univariate
// polynomial of degree < n taken at points 0, 1, ..., n-1, it returns the
// polynomial's value at r. This is used to evaluate a sum-check round
// polynomial (sent as samples) at the verifier's freshly drawn challenge,
// and is a direct port of original_source/safetynets.cc's extrap.
func Extrap(samples []field.Element, r field.Element) field.Element {
	n := uint64(len(samples))
	result := field.Zero()

	for i := uint64(0); i < n; i++ {
		mult := field.One()
		for j := uint64(0); j < n; j++ {
			if i == j {
				continue
			}
			// mult *= (r - j) / (i - j), all mod p.
			num := r.Sub(field.FromUint64(j))
			den := field.FromInt64(int64(i) - int64(j)).Inverse()
			mult = mult.Mul(num).Mul(den)
		}
		result = result.Add(mult.Mul(samples[i]))
	}
	return result
}
