package sumcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
)

func buildMatMulCase(t *testing.T, e, d, f int) (int, int, int, mle.Table, mle.Table, Claim) {
	t.Helper()

	a := make(mle.Table, 1<<(e+d))
	for i := range a {
		a[i] = field.FromUint64(uint64(i + 1))
	}
	w := make(mle.Table, 1<<(f+d))
	for i := range w {
		w[i] = field.FromUint64(uint64(2*i + 3))
	}

	// C[i,j] = Σ_k A[i,k]*W[j,k], flattened row-major over (i,j).
	c := make(mle.Table, 1<<(e+f))
	rows, cols, inner := 1<<e, 1<<f, 1<<d
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := field.Zero()
			for k := 0; k < inner; k++ {
				sum = sum.Add(a[i*inner+k].Mul(w[j*inner+k]))
			}
			c[i*cols+j] = sum
		}
	}

	z := make([]field.Element, e+f)
	src := challenge.NewDeterministic(7)
	for i := range z {
		z[i] = src.Next()
	}
	a0 := c.Evaluate(z)

	return e, d, f, a, w, Claim{Point: z, Value: a0}
}

func TestMatMulProveVerifyRoundTrip(t *testing.T) {
	e, d, f, a, w, upstream := buildMatMulCase(t, 2, 2, 1)

	proverSrc := challenge.NewDeterministic(99)
	prover := NewMatMul(e, d, f, upstream, a, w)
	proof, downstreamProve := prover.Prove(proverSrc)

	verifierSrc := challenge.NewDeterministic(99)
	verifier := NewMatMulVerifier(e, d, f, upstream, w)
	downstreamVerify, err := verifier.Verify(proof, verifierSrc)
	assert.NoError(t, err)
	assert.Equal(t, downstreamProve.Value, downstreamVerify.Value)
	assert.Equal(t, downstreamProve.Point, downstreamVerify.Point)

	expectedA := a.Evaluate(downstreamVerify.Point)
	assert.Equal(t, expectedA, downstreamVerify.Value)
}

func TestMatMulVerifyRejectsTamperedRound(t *testing.T) {
	e, d, f, a, w, upstream := buildMatMulCase(t, 2, 2, 1)

	proverSrc := challenge.NewDeterministic(5)
	prover := NewMatMul(e, d, f, upstream, a, w)
	proof, _ := prover.Prove(proverSrc)
	proof.Rounds[0][0] = proof.Rounds[0][0].Add(field.One())

	verifierSrc := challenge.NewDeterministic(5)
	verifier := NewMatMulVerifier(e, d, f, upstream, w)
	_, err := verifier.Verify(proof, verifierSrc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "matrix-matrix mult layer first check failed")
}

func TestMatMulVerifyRejectsTamperedFinalEval(t *testing.T) {
	e, d, f, a, w, upstream := buildMatMulCase(t, 1, 1, 1)

	proverSrc := challenge.NewDeterministic(11)
	prover := NewMatMul(e, d, f, upstream, a, w)
	proof, _ := prover.Prove(proverSrc)
	proof.FinalEval = proof.FinalEval.Add(field.One())

	verifierSrc := challenge.NewDeterministic(11)
	verifier := NewMatMulVerifier(e, d, f, upstream, w)
	_, err := verifier.Verify(proof, verifierSrc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "matrix-matrix mult layer last check failed")
}
