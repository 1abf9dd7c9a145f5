package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInverseLaw is F1: for all a, a * inverse(a) mod p = 1 when a mod p != 0.
func TestInverseLaw(t *testing.T) {
	samples := []Element{1, 2, 3, 7, 12345, Element(Prime - 1), Element(Prime / 2)}
	for _, a := range samples {
		inv := a.Inverse()
		got := a.Mul(inv).Canonical()
		assert.Equal(t, One(), got, "a=%v", uint64(a))
	}
}

// TestInverseBoundary is F6: inverse(0) returns 0 and inverse(1) returns 1.
func TestInverseBoundary(t *testing.T) {
	assert.Equal(t, Zero(), Zero().Inverse())
	assert.Equal(t, One(), One().Inverse())
}

// TestPowBySquaring is F2: repeated-squaring matches repeated multiplication.
func TestPowBySquaring(t *testing.T) {
	bases := []Element{0, 1, 2, 3, 17, Element(Prime - 2)}
	exps := []uint64{0, 1, 2, 3, 5, 16, 100}

	for _, b := range bases {
		for _, e := range exps {
			want := One()
			for i := uint64(0); i < e; i++ {
				want = want.Mul(b)
			}
			got := b.Pow(e)
			assert.True(t, want.Canonical().Equal(got.Canonical()), "base=%v exp=%v want=%v got=%v", uint64(b), e, uint64(want), uint64(got))
		}
	}
}

// TestReduceLooseBound is F3: reduce_loose(x) mod p = x mod p and
// reduce_loose(x) <= p+8.
func TestReduceLooseBound(t *testing.T) {
	xs := []uint64{0, 1, Prime, Prime + 1, Prime - 1, ^uint64(0), 1 << 62, 1<<63 + 12345}
	for _, x := range xs {
		r := ReduceLoose(x)
		assert.LessOrEqual(t, uint64(r), Prime+8, "x=%v", x)

		want := bigMod(x)
		assert.Equal(t, want, uint64(r.Canonical()), "x=%v", x)
	}
}

// bigMod computes x mod Prime by repeated subtraction, to cross-check
// ReduceLoose against the mathematical definition independently of its
// bit-trick implementation.
func bigMod(x uint64) uint64 {
	// x < 2^64 < 9*Prime (since Prime = 2^61-1), so at most eight
	// subtractions are needed.
	for x >= Prime {
		x -= Prime
	}
	return x
}

func TestEqualToleratesPSlack(t *testing.T) {
	a := Element(5)
	b := Element(5 + Prime)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(Element(6)))
}

func TestAddSubRoundTrip(t *testing.T) {
	a, b := Element(123456789), Element(987654321)
	sum := a.Add(b)
	back := sum.Sub(b)
	assert.True(t, back.Canonical().Equal(a.Canonical()))
}

func TestNeg(t *testing.T) {
	a := Element(42)
	assert.Equal(t, Zero(), a.Add(a.Neg()).Canonical())
}

func TestFromInt64(t *testing.T) {
	assert.Equal(t, Element(5), FromInt64(5).Canonical())
	neg := FromInt64(-5)
	assert.Equal(t, Element(Prime-5), neg.Canonical())
}
