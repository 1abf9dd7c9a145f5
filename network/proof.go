package network

import "github.com/zghodsi/safetynets-gkr/sumcheck"

// Proof is one full network verification's transcript: the three reducers'
// proofs, indexed by layer (index i holds layer i's proof, input layer
// first, the same order as Driver.Dims). Square has one fewer entry than
// Bias and MatMul, since the last layer runs no activation.
type Proof struct {
	Square []sumcheck.Proof
	Bias   []sumcheck.Proof
	MatMul []sumcheck.Proof
}
