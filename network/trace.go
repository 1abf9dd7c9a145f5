package network

import (
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
)

// trace is the prover's honest forward pass: the per-layer tensors a
// reducer walk needs as witnesses, computed once up front so Prove never
// has to re-derive a lower layer's activations while it is busy reducing a
// higher one.
type trace struct {
	input      mle.Table   // the network's true input, length 2^(E+D_0)
	matmulOut  []mle.Table // per layer, pre-bias, length 2^(E+F)
	biasOut    []mle.Table // per layer, post-bias pre-activation, length 2^(E+F)
	layerInput []mle.Table // per layer, this layer's input activation, length 2^(E+D)
}

// computeTrace runs the network forward: for each layer, matrix-multiply
// the current activation by that layer's weight, add its bias, and, for
// every layer but the last, square the result to get the next layer's
// input. The last layer's bias output is the network's true output.
func computeTrace(dims []LayerDims, weights, biases []mle.Table, input mle.Table) *trace {
	l := len(dims)
	tr := &trace{
		input:      input,
		matmulOut:  make([]mle.Table, l),
		biasOut:    make([]mle.Table, l),
		layerInput: make([]mle.Table, l),
	}

	activation := input
	for i, d := range dims {
		tr.layerInput[i] = activation

		rows, cols, inner := 1<<d.E, 1<<d.F, 1<<d.D
		mm := make(mle.Table, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				sum := field.Zero()
				for k := 0; k < inner; k++ {
					sum = sum.Add(activation[r*inner+k].Mul(weights[i][c*inner+k]))
				}
				mm[r*cols+c] = sum
			}
		}
		tr.matmulOut[i] = mm

		biased := make(mle.Table, len(mm))
		for j := range mm {
			biased[j] = mm[j].Add(biases[i][j])
		}
		tr.biasOut[i] = biased

		if i != l-1 {
			squared := make(mle.Table, len(biased))
			for j := range biased {
				squared[j] = biased[j].Mul(biased[j])
			}
			activation = squared
		}
	}
	return tr
}

// Output returns the network's true output tensor: the last layer's bias
// output, un-activated (spec.md's layers run square activation on every
// layer but the last).
func (tr *trace) Output() mle.Table {
	return tr.biasOut[len(tr.biasOut)-1]
}
