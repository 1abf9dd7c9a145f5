// Package challenge provides the verifier's source of randomness as an
// injectable interface, resolving the Open Question of spec.md §9: the
// original C reference draws challenges from the platform rand() directly
// (a known weakness, since it only covers [0, 2^32) rather than all of
// F_p). This package instead exposes Source, with a deterministic
// implementation for tests/benchmarks and a transcript-hash implementation
// as the production-grade public-coin upgrade path the design note
// anticipates.
package challenge

import "github.com/zghodsi/safetynets-gkr/field"

// Source is the verifier's local randomness. A reducer calls Observe with
// whatever the prover has just sent (a round polynomial's samples) and then
// Next to draw the round's challenge. Prove and Verify must be given
// equivalent sources (same seed, or symmetric transcript state) so that the
// prover's folds and the verifier's checks agree on the same challenge
// sequence (invariant I4).
type Source interface {
	// Observe absorbs prover-sent values into the source's state. It is a
	// no-op for sources that do not derive challenges from the transcript.
	Observe(values []field.Element)
	// Next draws the next challenge element of F_p.
	Next() field.Element
}
