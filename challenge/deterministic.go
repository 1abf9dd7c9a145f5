package challenge

import "github.com/zghodsi/safetynets-gkr/field"

// Deterministic draws challenges from a seeded splitmix64 generator. It
// ignores Observe entirely, since its whole purpose is bit-for-bit
// reproducible runs for tests and the end-to-end scenarios of spec.md §8
// ("use fixed pseudorandom seeds").
type Deterministic struct {
	state uint64
}

// NewDeterministic returns a Source seeded with seed.
func NewDeterministic(seed uint64) *Deterministic {
	return &Deterministic{state: seed}
}

// Observe is a no-op: Deterministic never looks at what the prover sent.
func (d *Deterministic) Observe(values []field.Element) {}

// Next returns the next splitmix64 output, reduced into F_p.
func (d *Deterministic) Next() field.Element {
	d.state += 0x9E3779B97F4A7C15
	z := d.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return field.FromUint64(z)
}
