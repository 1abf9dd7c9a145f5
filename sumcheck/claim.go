// Package sumcheck implements the three layer reducers SafetyNets runs atop
// the sum-check protocol: matrix multiplication, bias addition, and square
// activation. Each reducer takes an upstream Claim about a layer's output
// tensor and produces a downstream Claim about the tensor one step closer to
// the network's true input, alongside a Proof the verifier checks round by
// round.
//
// This package plays the role the teacher (Consensys-gkr-mimc) splits across
// sumcheck/prover.go and sumcheck/verifier.go, generalized from a single
// fan-in gate shape to the three fixed SafetyNets layer kinds, and stripped
// of the teacher's worker-pool parallelism: spec.md §5 requires the kernel
// to run single-threaded and synchronously.
package sumcheck

import "github.com/zghodsi/safetynets-gkr/field"

// Claim is an assertion that a tensor's multilinear extension takes value
// Value at Point. The network driver threads one Claim through every
// reducer invocation, output layer to input layer (invariant I4).
type Claim struct {
	Point []field.Element
	Value field.Element
}

// Proof is one reducer's sum-check transcript: one polynomial per round
// (sent as evaluations at 0, 1, ... up to the reducer's degree), plus the
// prover's claimed final evaluation of the hidden operand the reducer
// reduced to (the value that becomes the downstream Claim). The verifier
// cannot derive FinalEval itself — it is exactly the non-determinism a
// sum-check proof supplies, the same role the teacher's gkr.Proof.Claims
// plays alongside its SumcheckProofs.
type Proof struct {
	Rounds    [][]field.Element
	FinalEval field.Element
}
