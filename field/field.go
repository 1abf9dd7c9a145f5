// Package field implements arithmetic over F_p for the Mersenne prime
// p = 2^61 - 1, the field SafetyNets runs its sum-check kernel over.
//
// An Element is a loose representation: after a single reduction step its
// value may exceed p by a small additive slack (at most 8). Every comparison
// site in this package and its callers must say explicitly whether it wants
// a canonical (fully reduced) value or is content with the equivalent-mod-p
// check "x == y || x+p == y" on already-reduced operands.
package field

// Prime is p = 2^61 - 1, the modulus every Element is taken over.
const Prime uint64 = 2305843009213693951

// mask is 2^32 - 1, used to split a uint64 into high/low 32-bit halves.
const mask uint64 = 4294967295

// Element is a residue mod Prime, possibly loose by up to +8 after a single
// ReduceLoose. It is a plain uint64 rather than a struct: since the field
// fits in one machine word, copying an Element by value is both the cheapest
// and the most idiomatic representation, in contrast to the teacher's
// curve-order fr.Element (four words, passed by pointer).
type Element uint64

// Zero is the additive identity.
func Zero() Element { return 0 }

// One is the multiplicative identity.
func One() Element { return 1 }

// ReduceLoose folds the high bits of x (above bit 61) back into the low
// bits, using 2^61 ≡ 1 (mod p). The result is congruent to x mod p and is at
// most p+8 (x>>61 is at most 7); TestReduceLooseBound in field_test.go checks
// both properties on sample values.
func ReduceLoose(x uint64) Element {
	return Element((x >> 61) + (x & uint64(Prime)))
}

// Canonical returns the fully reduced representative of e, in [0, p).
func (e Element) Canonical() Element {
	v := ReduceLoose(uint64(e))
	if uint64(v) >= Prime {
		v -= Element(Prime)
	}
	return v
}

// Equal reports whether e and o are congruent mod p, tolerating the loose
// representation's extra +p slack on already-reduced operands (this is
// check (ii) from the data model: "x = y or x + p = y"). Use Canonical
// first if either operand has not gone through at least one reduction.
func (e Element) Equal(o Element) bool {
	if e == o {
		return true
	}
	return e+Element(Prime) == o || o+Element(Prime) == e
}

// Add returns e+o, loose.
func (e Element) Add(o Element) Element {
	return ReduceLoose(uint64(e) + uint64(o))
}

// Sub returns e-o, loose. Implemented as e + (p-o) so the subtraction never
// underflows a uint64.
func (e Element) Sub(o Element) Element {
	return ReduceLoose(uint64(e) + uint64(Prime) - uint64(o.Canonical()))
}

// Mul returns e*o mod p, loose (at most p+8).
//
// The multiplication uses a 32/32 high/low split so that no partial product
// exceeds 2^64-1, and the identity 2^64 ≡ 8 (mod p) to fold the high-half
// contribution back in, following original_source/math.h's myModMult.
func (e Element) Mul(o Element) Element {
	x, y := uint64(e), uint64(o)

	hiX, hiY := x>>32, y>>32
	loX, loY := x&mask, y&mask

	piece1 := ReduceLoose((hiX * hiY) << 3)

	z := hiX*loY + hiY*loX
	hiZ, loZ := z>>32, z&mask

	piece2 := ReduceLoose(uint64(hiZ)<<3 + uint64(ReduceLoose(loZ<<32)))
	piece3 := ReduceLoose(loX * loY)

	return ReduceLoose(uint64(piece1) + uint64(piece2) + uint64(piece3))
}

// Neg returns -e mod p, loose.
func (e Element) Neg() Element {
	return Zero().Sub(e)
}

// Pow raises e to the exponent b by right-to-left repeated squaring.
// Pow(e, 0) is One; Pow(e, 1) is e unchanged.
func (e Element) Pow(b uint64) Element {
	if b == 0 {
		return One()
	}
	result := One()
	base := e
	for b > 0 {
		if b&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		b >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse of e mod p via the extended
// Euclidean algorithm run in the field representation itself, so the Bézout
// coefficient comes out already reduced. Inverse(0) returns 0; this is the
// caller's responsibility to detect, since it is never reachable from the
// sum-check kernel (every divisor there is a small, fixed, nonzero integer).
func (e Element) Inverse() Element {
	u1, _, u3 := extEuclid(e)
	if u3 == One() {
		return u1.Canonical()
	}
	return Zero()
}

// extEuclid runs the extended Euclidean algorithm on the pair (a, Prime),
// mirroring original_source/math.cc's extEuclideanAlg: it returns the Bézout
// coefficient u1 (such that u1*a + u2*Prime = u3 = gcd(a, Prime)).
func extEuclid(a Element) (u1, u2, u3 Element) {
	u1, u2, u3 = One(), Zero(), a
	v1, v2, v3 := Zero(), One(), Element(Prime)

	// The first pass always runs (v3 starts at Prime, which would otherwise
	// end the loop before it begins); it swaps the pair so that v3 = a.
	for {
		q := Element(uint64(u3) / uint64(v3))
		t1 := ReduceLoose(uint64(u1) + uint64(Prime) - uint64(q.Mul(v1)))
		t2 := ReduceLoose(uint64(u2) + uint64(Prime) - uint64(q.Mul(v2)))
		t3 := ReduceLoose(uint64(u3) + uint64(Prime) - uint64(q.Mul(v3)))
		u1, u2, u3 = v1, v2, v3
		v1, v2, v3 = t1, t2, t3
		if v3 == 0 || v3 == Element(Prime) {
			break
		}
	}
	return u1, u2, u3
}

// FromUint64 embeds an ordinary integer into the field by reduction mod p.
// This is the "ordinary integer embedding" spec.md §1 refers to: there is no
// floating-point path into the proof.
func FromUint64(x uint64) Element {
	return ReduceLoose(x)
}

// FromInt64 embeds a signed integer, wrapping negative values mod p.
func FromInt64(x int64) Element {
	if x >= 0 {
		return FromUint64(uint64(x))
	}
	return Zero().Sub(FromUint64(uint64(-x)))
}
