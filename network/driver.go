package network

import (
	"fmt"

	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
	"github.com/zghodsi/safetynets-gkr/sumcheck"
)

// Driver walks a network's layers output-to-input, running each layer's
// square-activation (skipped at the output layer), bias, and matrix-mult
// reducers in turn and threading the resulting claim to the next layer
// down, exactly as spec.md §4.4 describes.
type Driver struct {
	Dims    []LayerDims
	Weights []mle.Table
	Biases  []mle.Table
}

// NewDriver constructs a Driver over a network whose layer dimensions,
// weights and biases are given input-layer-first (Dims[0] is the layer
// closest to the true input).
func NewDriver(dims []LayerDims, weights, biases []mle.Table) *Driver {
	return &Driver{Dims: dims, Weights: weights, Biases: biases}
}

// Prove runs the honest forward pass over input, then proves that pass
// correct: it returns the network's true output tensor, a Proof the
// verifier can check, and the final Claim about the true input tensor that
// terminates the reducer chain (invariant I4's boundary case).
func (d *Driver) Prove(input mle.Table, outputPoint []field.Element, src challenge.Source) (mle.Table, Proof, sumcheck.Claim) {
	tr := computeTrace(d.Dims, d.Weights, d.Biases, input)
	l := len(d.Dims)

	output := tr.Output()
	claim := sumcheck.Claim{Point: outputPoint, Value: output.Evaluate(outputPoint)}

	proof := Proof{
		Square: make([]sumcheck.Proof, 0, l-1),
		Bias:   make([]sumcheck.Proof, l),
		MatMul: make([]sumcheck.Proof, l),
	}

	for i := l - 1; i >= 0; i-- {
		dims := d.Dims[i]
		width := dims.E + dims.F

		if i != l-1 {
			sq := sumcheck.NewSquare(width, claim, tr.biasOut[i])
			sqProof, next := sq.Prove(src)
			proof.Square = append(proof.Square, sqProof)
			claim = next
		}

		bias := sumcheck.NewBias(width, claim, tr.matmulOut[i], d.Biases[i])
		biasProof, next := bias.Prove(src)
		proof.Bias[i] = biasProof
		claim = next

		mm := sumcheck.NewMatMul(dims.E, dims.D, dims.F, claim, tr.layerInput[i], d.Weights[i])
		mmProof, next := mm.Prove(src)
		proof.MatMul[i] = mmProof
		claim = next
	}

	// proof.Square was appended in layer order L-2, L-3, ..., 0; reverse it
	// so index i holds layer i's square proof, matching Bias and MatMul.
	for a, b := 0, len(proof.Square)-1; a < b; a, b = a+1, b-1 {
		proof.Square[a], proof.Square[b] = proof.Square[b], proof.Square[a]
	}

	return output, proof, claim
}

// Verify replays the driver's walk against proof, returning the final
// claim about the true input tensor. The caller (the network's true
// boundary check) must separately confirm claim.Value equals the true
// input tensor's MLE at claim.Point — Verify itself never sees that
// tensor, only the reducer transcripts.
func (d *Driver) Verify(outputValue field.Element, outputPoint []field.Element, proof Proof, src challenge.Source) (sumcheck.Claim, error) {
	l := len(d.Dims)
	if len(proof.Bias) != l || len(proof.MatMul) != l || len(proof.Square) != l-1 {
		return sumcheck.Claim{}, fmt.Errorf("network: proof shape does not match %d layers", l)
	}

	claim := sumcheck.Claim{Point: outputPoint, Value: outputValue}

	for i := l - 1; i >= 0; i-- {
		dims := d.Dims[i]
		width := dims.E + dims.F

		if i != l-1 {
			sq := sumcheck.NewSquareVerifier(width, claim)
			next, err := sq.Verify(proof.Square[i], src)
			if err != nil {
				return sumcheck.Claim{}, err
			}
			claim = next
		}

		bias := sumcheck.NewBiasVerifier(width, claim, d.Biases[i])
		next, err := bias.Verify(proof.Bias[i], src)
		if err != nil {
			return sumcheck.Claim{}, err
		}
		claim = next

		mm := sumcheck.NewMatMulVerifier(dims.E, dims.D, dims.F, claim, d.Weights[i])
		next, err = mm.Verify(proof.MatMul[i], src)
		if err != nil {
			return sumcheck.Claim{}, err
		}
		claim = next
	}

	return claim, nil
}
