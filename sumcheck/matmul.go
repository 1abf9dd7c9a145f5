package sumcheck

import (
	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
)

// MatMul reduces a claim about a layer's pre-activation output C, where
// C[i,j] = Σ_k A[i,k]·W[j,k], to a claim about A (the layer's hidden input
// activations, length 2^(E+D)) and a direct evaluation of W (the layer's
// public weight matrix, length 2^(F+D), stored row-major with the F axis
// outermost — "transposed" relative to the usual row-by-column layout, so
// both operands share the same inner D axis). C is indexed i*2^F+j, so its
// flat index carries the B/column axis (F, width f) in the low bits and the
// A/row axis (E, width e) in the high bits — the upstream point must be
// split the same way, low-f-then-high-e, matching original_source's
// verify_mm.
//
// Grounded on original_source/safetynets.cc's sum_check_mm / verify_mm.
type MatMul struct {
	E, D, F  int
	Upstream Claim
	A        mle.Table // witness; unset on a verify-only instance
	W        mle.Table // public; required on both prover and verifier instances
}

// NewMatMul constructs a reducer for the prover side, bound to a and w.
func NewMatMul(e, d, f int, upstream Claim, a, w mle.Table) *MatMul {
	return &MatMul{E: e, D: d, F: f, Upstream: upstream, A: a, W: w}
}

// NewMatMulVerifier constructs a reducer for the verifier side: it only
// ever needs the public weight matrix.
func NewMatMulVerifier(e, d, f int, upstream Claim, w mle.Table) *MatMul {
	return &MatMul{E: e, D: d, F: f, Upstream: upstream, W: w}
}

// matmulSamples is 3: each round's summand is bilinear in the two folded
// operands, so its univariate restriction has degree 2.
const matmulSamples = 3

const kindMatMul = "matrix-matrix mult"

func (m *MatMul) Kind() string { return kindMatMul }
func (m *MatMul) Rounds() int  { return m.D }

// Prove folds A's row axis by the upstream point's A-side coordinates and
// W's row axis by its W-side coordinates, then runs D rounds of sum-check
// over the shared inner axis, folding both operands by each round's
// challenge. It consumes challenges high-to-low (round i's challenge lands
// at r[D-1-i]) per spec.md §9's matmul/bias convention.
func (m *MatMul) Prove(src challenge.Source) (Proof, Claim) {
	e, d, f := m.E, m.D, m.F
	zW, zA := m.Upstream.Point[:f], m.Upstream.Point[f:f+e]

	aFold := m.A.DeepCopy()
	wFold := m.W.DeepCopy()
	aFold.FoldVector(zA)
	wFold.FoldVector(zW)

	rounds := make([][]field.Element, d)
	rInner := make([]field.Element, d)

	for round := 0; round < d; round++ {
		half := len(aFold) / 2
		poly := make([]field.Element, matmulSamples)
		for k := 0; k < half; k++ {
			a0, a1 := aFold[k], aFold[k+half]
			w0, w1 := wFold[k], wFold[k+half]
			poly[0] = poly[0].Add(a0.Mul(w0))
			poly[1] = poly[1].Add(a1.Mul(w1))
			aEx := a1.Add(a1).Sub(a0)
			wEx := w1.Add(w1).Sub(w0)
			poly[2] = poly[2].Add(aEx.Mul(wEx))
		}
		rounds[round] = poly

		src.Observe(poly)
		rho := src.Next()
		storeChallenge(rInner, round, d, true, rho)
		aFold.Fold(rho)
		wFold.Fold(rho)
	}

	claimedA := aFold[0]
	zOut := append(append([]field.Element(nil), rInner...), zA...)

	return Proof{Rounds: rounds, FinalEval: claimedA}, Claim{Point: zOut, Value: claimedA}
}

// Verify replays the D round checks and, on success, checks the final
// algebraic identity claimedA · W_MLE(z_in) == the last round's folded
// claim, where W_MLE is evaluated directly since the weight matrix is
// public. It returns the downstream claim about A for the caller to
// recurse on (the square-activation reducer of the layer below, or the
// network's true-input boundary check at layer 1).
func (m *MatMul) Verify(proof Proof, src challenge.Source) (Claim, error) {
	e, _, f := m.E, m.D, m.F
	zW, zA := m.Upstream.Point[:f], m.Upstream.Point[f:f+e]

	prev, rInner, err := verifyRounds(kindMatMul, m.Upstream.Value, proof.Rounds, src, true)
	if err != nil {
		return Claim{}, err
	}

	zIn := append(append([]field.Element(nil), rInner...), zW...)
	wEval := m.W.Evaluate(zIn)
	expected := proof.FinalEval.Mul(wEval)
	if !expected.Equal(prev) {
		return Claim{}, &CheckError{Kind: kindMatMul, Last: true}
	}

	zOut := append(append([]field.Element(nil), rInner...), zA...)
	return Claim{Point: zOut, Value: proof.FinalEval}, nil
}
