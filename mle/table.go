// Package mle implements the multilinear-extension toolkit shared by every
// sum-check reducer: evaluation of a bookkeeping table's MLE at an arbitrary
// point, the Lagrange basis χ_v(r), the identity MLE, and the fold-in-place
// operation that halves a table's logical length per round.
//
// The Table type plays the role the teacher (Consensys-gkr-mimc) splits
// across poly.MultiLin (fold/evaluate) and sumcheck.BookKeepingTable (the
// same, re-exported under the sumcheck package) — here both concerns live on
// one type, since this repository has no SNARK-side mirror of the
// bookkeeping table to keep separate.
package mle

import "github.com/zghodsi/safetynets-gkr/field"

// Table is a contiguous bookkeeping table of length 2^k, the values of a
// function on {0,1}^k whose multilinear extension a reducer is folding down.
// Its lifetime is scoped to one reducer invocation: allocated up front,
// consumed in place by successive Fold calls, discarded on return.
type Table []field.Element

// NewTable wraps values as a Table, panicking if its length is not a power
// of two (invariant I1).
func NewTable(values []field.Element) Table {
	if !isPowerOfTwo(len(values)) {
		panic("mle: table length must be a power of two")
	}
	return Table(values)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Fold substitutes ρ for the highest-indexed Boolean variable of the table's
// MLE: it overwrites the bottom half V[0..len/2) with
// V[k]*(1-ρ) + V[k+len/2]*ρ, halving the table's logical length (invariant
// I2). This is the unique operation described in spec.md §4.2.
func (t *Table) Fold(rho field.Element) {
	mid := len(*t) / 2
	bottom, top := (*t)[:mid], (*t)[mid:]
	one := field.One()
	oneMinusRho := one.Sub(rho)
	for i := 0; i < mid; i++ {
		bottom[i] = bottom[i].Mul(oneMinusRho).Add(top[i].Mul(rho))
	}
	*t = (*t)[:mid]
}

// DeepCopy returns an independent copy of the table, for use when the same
// underlying values must be folded along two different evaluation paths
// (e.g. a verifier-side boundary Evaluate must not disturb a table a reducer
// still owns).
func (t Table) DeepCopy() Table {
	cp := make(Table, len(t))
	copy(cp, t)
	return cp
}

// Evaluate computes Σ_k T[k]·χ_k(r), the naïve Θ(m·2^m) evaluation of the
// table's MLE at r ∈ F_p^m, m = log2(len(T)). r[i] is bit i of k (the same
// indexing Chi and EvaluateI use, and original_source/math.cc's chi/
// evaluate_V_i): since Fold always peels the table's current highest-indexed
// variable, matching that convention means folding r back-to-front — r[m-1]
// (pinning bit m-1, the table's initial top bit) first, down to r[0] last.
// After folding every coordinate, a table of length 2^m has been reduced to
// a single value equal to evaluate_V(T, r) (spec.md §4.2, and the M3 law
// relating Fold to Evaluate).
func (t Table) Evaluate(r []field.Element) field.Element {
	cp := t.DeepCopy()
	for i := len(r) - 1; i >= 0; i-- {
		cp.Fold(r[i])
	}
	return cp[0]
}

// FoldVector folds the table once per coordinate of vals, back-to-front:
// vals[len(vals)-1] pins the table's current top bit, vals[len(vals)-2] the
// next, and so on, so that vals[i] ends up pinning bit i — the same r[i]↔bit
// i convention Evaluate uses. This is exactly what Evaluate does internally,
// exposed here because a reducer sometimes needs to collapse a set of
// already-known coordinates (e.g. the row axis of a matrix-mult operand)
// before it starts drawing fresh sum-check challenges over the remaining
// axis.
func (t *Table) FoldVector(vals []field.Element) {
	for i := len(vals) - 1; i >= 0; i-- {
		t.Fold(vals[i])
	}
}

// At returns the boolean-hypercube value at index v without folding
// (equivalently, evaluate_V(T, bits_of(v)) since χ_v collapses to a single
// indicator — see law M1).
func (t Table) At(v int) field.Element {
	return t[v]
}
