package sumcheck

import (
	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
)

// Bias reduces a claim about a layer's biased pre-activation S = V + Bias,
// both of length 2^Width, to a claim about V (the layer's matmul output,
// still hidden) and a direct evaluation of Bias (public). Its running
// tables are the identity table seeded from the upstream point and V and
// Bias folded in parallel — kept separate rather than pre-summed, since
// fold is additive-linear, so the final claim about V alone can be read
// straight off the folded table instead of a second fresh evaluation (a
// simplification over original_source/safetynets.cc's check_bias_layer,
// which recomputes V's evaluation from an untouched copy; see DESIGN.md).
type Bias struct {
	Width    int
	Upstream Claim
	V        mle.Table // witness; unset on a verify-only instance
	Bias     mle.Table // public; required on both prover and verifier instances
}

// NewBias constructs a reducer for the prover side, bound to v and bias.
func NewBias(width int, upstream Claim, v, bias mle.Table) *Bias {
	return &Bias{Width: width, Upstream: upstream, V: v, Bias: bias}
}

// NewBiasVerifier constructs a reducer for the verifier side.
func NewBiasVerifier(width int, upstream Claim, bias mle.Table) *Bias {
	return &Bias{Width: width, Upstream: upstream, Bias: bias}
}

const biasSamples = 3

const kindBias = "bias"

func (b *Bias) Kind() string { return kindBias }
func (b *Bias) Rounds() int  { return b.Width }

// Prove seeds the identity table from the upstream point q and runs Width
// rounds folding V, Bias and the identity table in lockstep, consuming
// challenges high-to-low like MatMul.
func (b *Bias) Prove(src challenge.Source) (Proof, Claim) {
	width := b.Width
	q := b.Upstream.Point

	vFold := b.V.DeepCopy()
	biasFold := b.Bias.DeepCopy()
	iFold := mle.FoldedEqTable(q)

	rounds := make([][]field.Element, width)
	r := make([]field.Element, width)

	for round := 0; round < width; round++ {
		half := len(iFold) / 2
		poly := make([]field.Element, biasSamples)
		for k := 0; k < half; k++ {
			v0, v1 := vFold[k], vFold[k+half]
			b0, b1 := biasFold[k], biasFold[k+half]
			i0, i1 := iFold[k], iFold[k+half]
			s0, s1 := v0.Add(b0), v1.Add(b1)

			poly[0] = poly[0].Add(i0.Mul(s0))
			poly[1] = poly[1].Add(i1.Mul(s1))
			iEx := i1.Add(i1).Sub(i0)
			sEx := s1.Add(s1).Sub(s0)
			poly[2] = poly[2].Add(iEx.Mul(sEx))
		}
		rounds[round] = poly

		src.Observe(poly)
		rho := src.Next()
		storeChallenge(r, round, width, true, rho)
		vFold.Fold(rho)
		biasFold.Fold(rho)
		iFold.Fold(rho)
	}

	claimedV := vFold[0]
	return Proof{Rounds: rounds, FinalEval: claimedV}, Claim{Point: append([]field.Element(nil), r...), Value: claimedV}
}

// Verify replays the round checks, then checks
// (claimedV + Bias_MLE(r))·I(q,r) against the final round claim, where both
// Bias_MLE and I are evaluated directly (Bias is public; I needs no
// witness at all).
func (b *Bias) Verify(proof Proof, src challenge.Source) (Claim, error) {
	q := b.Upstream.Point

	prev, r, err := verifyRounds(kindBias, b.Upstream.Value, proof.Rounds, src, true)
	if err != nil {
		return Claim{}, err
	}

	biasEval := b.Bias.Evaluate(r)
	iEval := mle.EvaluateI(q, r)
	expected := proof.FinalEval.Add(biasEval).Mul(iEval)
	if !expected.Equal(prev) {
		return Claim{}, &CheckError{Kind: kindBias, Last: true}
	}

	return Claim{Point: r, Value: proof.FinalEval}, nil
}
