// Package network implements the layer driver of spec.md §4.4: walking a
// fully-connected network's layers from output to input, threading one
// sum-check claim through the square-activation, bias, and matrix-mult
// reducers of each layer in turn, ending with a claim about the true input
// tensor. The driver does not evaluate the input tensor itself: the caller
// checks that final claim against the input's MLE.
//
// Grounded on the teacher's gkr/prover.go and gkr/verifier.go, which walk a
// circuit's layers in the same right-to-left, claim-threading shape; here
// the "circuit" is fixed to SafetyNets' three-reducer-per-layer structure
// instead of a general gate graph.
package network

// LayerDims is one layer's (batch, input, output) bit-widths: E is the
// batch axis (shared across every layer), D this layer's input-feature
// axis, F this layer's output-feature axis. A layer's weight matrix has
// 2^(F+D) entries, its bias and output tensors 2^(E+F) entries, and its
// input tensor 2^(E+D) entries (the previous layer's output, or the
// network's true input at layer 1).
//
// Grounded on original_source/util.cc's read_architecture_from_file, whose
// per-layer int triple is exactly (batch, prevl, currl).
type LayerDims struct {
	E, D, F int
}
