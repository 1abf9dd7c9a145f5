package sumcheck

import "github.com/zghodsi/safetynets-gkr/challenge"

// Reducer is the common shape of the three SafetyNets layer reducers,
// mirrored on the teacher's circuit.Gate interface (ID/Eval/Degree here
// becomes Kind/Prove/Verify). MatMul, Bias and Square all implement it;
// network.Driver calls each concrete reducer's constructor and methods
// directly rather than through this interface.
// Each concrete reducer is constructed with its upstream Claim and witness
// already bound, so Prove and Verify need only the run's challenge source.
type Reducer interface {
	Kind() string
	Rounds() int
	Prove(src challenge.Source) (Proof, Claim)
	Verify(proof Proof, src challenge.Source) (Claim, error)
}
