package sumcheck

import (
	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
)

// Square reduces a claim about a layer's post-activation output
// S[k] = V[k]^2 to a claim about V, the pre-activation values (this layer's
// matmul+bias output, one step closer to the input). Squaring makes each
// round's summand trilinear (V(x) appears twice, I(x) once), so round
// polynomials here have degree 3 where MatMul and Bias have degree 2 — and,
// per spec.md §9, this reducer consumes challenges low-to-high (round i's
// challenge lands at r[i]) rather than high-to-low. Every other reducer's
// high-to-low storage already produces a point in position-i↔bit-i order
// (round 0, the table's initial top bit, lands at the far end of r) —
// exactly how Evaluate/EvaluateI/FoldedEqTable read their point arguments.
// Low-to-high storage builds r in the opposite order, so Square reverses it
// once after the round loop before using it as a public-operand argument or
// handing it downstream; see reverseChallenges below.
type Square struct {
	Width    int
	Upstream Claim
	V        mle.Table // witness; unset on a verify-only instance
}

// NewSquare constructs a reducer for the prover side, bound to v.
func NewSquare(width int, upstream Claim, v mle.Table) *Square {
	return &Square{Width: width, Upstream: upstream, V: v}
}

// NewSquareVerifier constructs a reducer for the verifier side. Square
// activation has no public operand besides V itself (which is exactly the
// hidden claim being reduced), so it needs nothing beyond the upstream
// claim.
func NewSquareVerifier(width int, upstream Claim) *Square {
	return &Square{Width: width, Upstream: upstream}
}

const squareSamples = 4

const kindSquare = "square activation"

func (s *Square) Kind() string { return kindSquare }
func (s *Square) Rounds() int  { return s.Width }

// Prove seeds the identity table from q and runs Width rounds folding V and
// the identity table in lockstep, sampling the degree-3 round polynomial at
// 0, 1, 2, 3 via linear extrapolation of both V and I before squaring.
func (s *Square) Prove(src challenge.Source) (Proof, Claim) {
	width := s.Width
	q := s.Upstream.Point

	vFold := s.V.DeepCopy()
	iFold := mle.FoldedEqTable(q)

	rounds := make([][]field.Element, width)
	r := make([]field.Element, width)

	for round := 0; round < width; round++ {
		half := len(iFold) / 2
		poly := make([]field.Element, squareSamples)
		for k := 0; k < half; k++ {
			vSamples := extend4(vFold[k], vFold[k+half])
			iSamples := extend4(iFold[k], iFold[k+half])
			for m := 0; m < squareSamples; m++ {
				poly[m] = poly[m].Add(vSamples[m].Mul(vSamples[m]).Mul(iSamples[m]))
			}
		}
		rounds[round] = poly

		src.Observe(poly)
		rho := src.Next()
		storeChallenge(r, round, width, false, rho)
		vFold.Fold(rho)
		iFold.Fold(rho)
	}

	claimedV := vFold[0]
	point := reverseChallenges(r)
	return Proof{Rounds: rounds, FinalEval: claimedV}, Claim{Point: point, Value: claimedV}
}

// Verify replays the round checks, then checks claimedV^2 · I(q,r) against
// the final round claim.
func (s *Square) Verify(proof Proof, src challenge.Source) (Claim, error) {
	q := s.Upstream.Point

	prev, r, err := verifyRounds(kindSquare, s.Upstream.Value, proof.Rounds, src, false)
	if err != nil {
		return Claim{}, err
	}

	point := reverseChallenges(r)
	iEval := mle.EvaluateI(q, point)
	expected := proof.FinalEval.Mul(proof.FinalEval).Mul(iEval)
	if !expected.Equal(prev) {
		return Claim{}, &CheckError{Kind: kindSquare, Last: true}
	}

	return Claim{Point: point, Value: proof.FinalEval}, nil
}

// reverseChallenges reorders a low-to-high-stored challenge vector (r[i] is
// round i's challenge) into the position-i↔bit-i order every other reducer's
// high-to-low storage produces natively — the order Evaluate, EvaluateI and
// FoldedEqTable all expect of a point argument.
func reverseChallenges(r []field.Element) []field.Element {
	out := make([]field.Element, len(r))
	for i, v := range r {
		out[len(r)-1-i] = v
	}
	return out
}

// extend4 linearly extrapolates a pair of samples at x=0,1 to x=2,3: the
// unique affine function through (0,v0),(1,v1) evaluated at every point a
// degree-3 round polynomial needs sampled.
func extend4(v0, v1 field.Element) [4]field.Element {
	step := v1.Sub(v0)
	return [4]field.Element{
		v0,
		v1,
		v1.Add(step),
		v1.Add(step).Add(step),
	}
}
