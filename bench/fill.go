// Package bench provides pseudorandom population of weight, bias and input
// tensors for benchmarking a proof run without a real trained network on
// hand. Grounded on the teacher's common.RandomFrArray (common/math.go) and
// original_source/safetynets.cc's main(), which fills every tensor via
// `rand() % 100` before timing a run.
package bench

import (
	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/field"
	"github.com/zghodsi/safetynets-gkr/mle"
	"github.com/zghodsi/safetynets-gkr/network"
)

// FillTable returns a length-n table of pseudorandom field elements drawn
// from a deterministic source, so a benchmark run is reproducible across
// invocations given the same seed.
func FillTable(n int, seed uint64) mle.Table {
	src := challenge.NewDeterministic(seed)
	t := make(mle.Table, n)
	for i := range t {
		t[i] = src.Next()
	}
	return t
}

// Network holds a freshly filled set of weights, biases and input for a
// network of the given layer dimensions.
type Network struct {
	Input   mle.Table
	Weights []mle.Table
	Biases  []mle.Table
}

// FillNetwork populates a Network matching dims, seeding each tensor from a
// distinct offset of seed so that weights, biases and the input never
// collide on the same pseudorandom stream.
func FillNetwork(dims []network.LayerDims, seed uint64) Network {
	weights := make([]mle.Table, len(dims))
	biases := make([]mle.Table, len(dims))
	for i, d := range dims {
		weights[i] = FillTable(1<<(d.F+d.D), seed+uint64(2*i)+1)
		biases[i] = FillTable(1<<(d.E+d.F), seed+uint64(2*i)+2)
	}
	input := FillTable(1<<(dims[0].E+dims[0].D), seed)
	return Network{Input: input, Weights: weights, Biases: biases}
}

// RandomPoint draws a length-n evaluation point for a benchmark's output
// challenge.
func RandomPoint(n int, seed uint64) []field.Element {
	src := challenge.NewDeterministic(seed)
	p := make([]field.Element, n)
	for i := range p {
		p[i] = src.Next()
	}
	return p
}
