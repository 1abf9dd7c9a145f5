package sumcheck

import (
	"fmt"

	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
)

// CheckError names the reducer kind, and either the round or "first"/"last",
// at which a proof failed verification (spec.md §6's stdout/stderr
// diagnostics, §8 scenario 3's literal "bias layer first check failed").
type CheckError struct {
	Kind  string
	Round int
	Last  bool
}

func (e *CheckError) Error() string {
	switch {
	case e.Last:
		return fmt.Sprintf("%s layer last check failed", e.Kind)
	case e.Round == 0:
		return fmt.Sprintf("%s layer first check failed", e.Kind)
	default:
		return fmt.Sprintf("%s layer check %d failed", e.Kind, e.Round)
	}
}

// storeChallenge places a round's freshly drawn challenge into the combined
// evaluation vector r, at the slot its reducer's fold-direction convention
// calls for: high-to-low (matmul, bias: r[T-1-round]) or low-to-high
// (square: r[round]). Both Prove and Verify use this so that the point a
// reducer hands downstream is assembled identically on both sides.
func storeChallenge(r []field.Element, round, total int, highToLow bool, rho field.Element) {
	if highToLow {
		r[total-1-round] = rho
	} else {
		r[round] = rho
	}
}

// verifyRounds replays a reducer's round-by-round consistency check: each
// round's polynomial must sum to the previous round's claim (the upstream
// value, for round 0), the verifier draws the round's challenge from src
// exactly as the prover did, and that challenge is folded into the claim via
// Lagrange extrapolation. It returns the final (post-loop) claim and the
// assembled evaluation point, for the reducer's final algebraic check.
func verifyRounds(kind string, upstream field.Element, rounds [][]field.Element, src challenge.Source, highToLow bool) (field.Element, []field.Element, error) {
	total := len(rounds)
	r := make([]field.Element, total)
	prev := upstream

	for round, poly := range rounds {
		sum := poly[0].Add(poly[1])
		if !sum.Equal(prev) {
			return field.Zero(), nil, &CheckError{Kind: kind, Round: round}
		}
		src.Observe(poly)
		rho := src.Next()
		storeChallenge(r, round, total, highToLow, rho)
		prev = mle.Extrap(poly, rho)
	}
	return prev, r, nil
}
