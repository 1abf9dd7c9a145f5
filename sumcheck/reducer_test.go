package sumcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zghodsi/safetynets-gkr/challenge"
)

var (
	_ Reducer = (*MatMul)(nil)
	_ Reducer = (*Bias)(nil)
	_ Reducer = (*Square)(nil)
)

// TestFoldDirectionConvention pins down spec.md §9's asymmetry: matmul and
// bias store round i's challenge at the high end of their internal r
// (r[T-1-i]), square activation at the low end (r[i]) and then reverses it
// before handing a point downstream (see reverseChallenges in square.go).
// Both conventions produce a downstream point in the same position-i↔bit-i
// order once reversal is accounted for — this test exists so a future edit
// that accidentally unifies the internal storage direction, or drops
// square's reversal, fails loudly.
func TestFoldDirectionConvention(t *testing.T) {
	_, _, _, a, w, mmUpstream := buildMatMulCase(t, 1, 2, 1)
	mm := NewMatMul(1, 2, 1, mmUpstream, a, w)
	_, mmDownstream := mm.Prove(challenge.NewDeterministic(1))
	firstChallenge := challenge.NewDeterministic(1).Next()
	// Round 0's challenge lands at the inner block's last index (d-1), not
	// index 0: with d=2 that is position 1 of the d-length inner prefix.
	assert.Equal(t, firstChallenge, mmDownstream.Point[1])

	v, sqUpstream := buildSquareCase(t, 2)
	sq := NewSquare(2, sqUpstream, v)
	_, sqDownstream := sq.Prove(challenge.NewDeterministic(1))
	// Round 0's challenge is stored internally at r[0], then the point is
	// reversed before being returned, landing it at the far end (width-1).
	assert.Equal(t, firstChallenge, sqDownstream.Point[1])
}
