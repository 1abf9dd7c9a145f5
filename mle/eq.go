package mle

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/zghodsi/safetynets-gkr/field"
)

// Chi returns χ_v(r), the v-th Lagrange basis function on the Boolean
// hypercube {0,1}^n: the product over bit i of v of (r_i if the bit is set,
// else 1-r_i). v's bits are read through a bitset.BitSet rather than ad hoc
// shifting, matching how Consensys-gnark's internal/algo_utils leans on
// bits-and-blooms/bitset for hypercube/index bookkeeping.
func Chi(v uint64, r []field.Element) field.Element {
	bits := bitset.From([]uint64{v})
	res := field.One()
	one := field.One()
	for i := 0; i < len(r); i++ {
		if bits.Test(uint(i)) {
			res = res.Mul(r[i])
		} else {
			res = res.Mul(one.Sub(r[i]))
		}
	}
	return res
}

// EvaluateI is the MLE of the hypercube identity function at (q, r):
// Π_i (q_i r_i + (1-q_i)(1-r_i)), computed in O(d) rather than by summing
// 2^d basis functions.
func EvaluateI(q, r []field.Element) field.Element {
	if len(q) != len(r) {
		panic("mle: EvaluateI requires q and r of equal length")
	}
	res := field.One()
	one := field.One()
	for i := range q {
		qr := q[i].Mul(r[i])
		nqnr := one.Sub(q[i]).Mul(one.Sub(r[i]))
		res = res.Mul(qr.Add(nqnr))
	}
	return res
}

// FoldedEqTable directly computes the length-2^n table of values
// Eq(q_1, ..., q_n, *, ..., *) for qPrime = [q_1 ... q_n], without ever
// materializing the sparse 2^(2n)-entry identity table it is the fold of.
// Grounded on the teacher's poly.FoldedEqTable / sumcheck.PrefoldedEqTable,
// which both implement the same recursive doubling; the doubling itself
// processes its fixed variables highest-index first (exactly like Fold), so
// to keep qPrime[i]↔bit i (Chi and EvaluateI's convention) it walks qPrime
// back-to-front: qPrime[n-1] is folded in on the first pass, qPrime[0] on
// the last.
func FoldedEqTable(qPrime []field.Element) Table {
	n := len(qPrime)
	q := make([]field.Element, n)
	for i, r := range qPrime {
		q[n-1-i] = r
	}

	table := make(Table, 1<<n)
	table[0] = field.One()

	for i, r := range q {
		for j := 0; j < (1 << i); j++ {
			jIdx := j << (n - i)
			jNext := jIdx + 1<<(n-1-i)
			table[jNext] = r.Mul(table[jIdx])
			table[jIdx] = table[jIdx].Sub(table[jNext])
		}
	}
	return table
}
