// Package timing accumulates the three-way runtime breakdown SafetyNets
// reports for a proof run: time spent on work outside the proof itself,
// time spent proving, and time spent verifying. The CLI records reading the
// architecture file as unverifiable time; the forward pass runs inside
// network.Driver.Prove and is counted as proving time.
// Grounded on original_source/util.cc's runtime struct/update_time/set_time,
// generalized from three free functions into methods on a Ledger value, in
// the manner of the teacher's common.TimeTracker (common/timing.go).
package timing

import "time"

// Ledger is the running total of the three timing categories across a
// network proof/verify pass.
type Ledger struct {
	Unverifiable time.Duration
	Prover       time.Duration
	Verifier     time.Duration
}

// Add combines l with another Ledger's readings, matching update_time's
// componentwise accumulation.
func (l Ledger) Add(other Ledger) Ledger {
	return Ledger{
		Unverifiable: l.Unverifiable + other.Unverifiable,
		Prover:       l.Prover + other.Prover,
		Verifier:     l.Verifier + other.Verifier,
	}
}

// Set returns a Ledger with the three readings replaced outright, matching
// set_time.
func Set(unverifiable, prover, verifier time.Duration) Ledger {
	return Ledger{Unverifiable: unverifiable, Prover: prover, Verifier: verifier}
}

// Track times fn and returns how long it took, a small helper in place of
// the teacher's common.TimeTracker/NewTimer (which logs on Close(); this
// package has no logger dependency of its own, so the caller decides what
// to do with the duration — the CLI logs it, a benchmark accumulates it).
func Track(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
