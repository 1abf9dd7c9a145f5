// Command safetynets runs a SafetyNets sum-check proof and verification
// over a pseudorandomly filled network matching an architecture file, and
// reports the three-way timing breakdown.
//
// Usage: safetynets <architecture-file>
//
// There are no flags (spec.md §6): the architecture file path is the only
// argument, read positionally in the manner of a Unix filter rather than
// through a flag-parsing library, since there is nothing else to parse.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/zghodsi/safetynets-gkr/arch"
	"github.com/zghodsi/safetynets-gkr/bench"
	"github.com/zghodsi/safetynets-gkr/challenge"
	"github.com/zghodsi/safetynets-gkr/mle"
	"github.com/zghodsi/safetynets-gkr/network"
	"github.com/zghodsi/safetynets-gkr/timing"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: safetynets <architecture-file>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run reads the architecture file, fills a network with pseudorandom
// weights/biases/input, then proves and verifies one inference pass over
// it, logging the three-way timing breakdown spec.md §6 calls for.
func run(archPath string) error {
	var ledger timing.Ledger
	var dims []network.LayerDims
	var parseErr error

	ledger.Unverifiable = timing.Track(func() {
		f, err := os.Open(archPath)
		if err != nil {
			parseErr = err
			return
		}
		defer f.Close()
		dims, parseErr = arch.Read(f)
	})
	if parseErr != nil {
		return fmt.Errorf("safetynets: %w", parseErr)
	}

	net := bench.FillNetwork(dims, 1)
	driver := network.NewDriver(dims, net.Weights, net.Biases)

	last := dims[len(dims)-1]
	outputPoint := bench.RandomPoint(last.E+last.F, 42)

	log.Info().Int("layers", len(dims)).Msg("starting proof")

	var verifyErr error
	var output mle.Table
	var networkProof network.Proof
	proverSrc := challenge.NewDeterministic(7)
	ledger.Prover = timing.Track(func() {
		output, networkProof, _ = driver.Prove(net.Input, outputPoint, proverSrc)
	})

	verifierSrc := challenge.NewDeterministic(7)
	outputValue := output.Evaluate(outputPoint)
	ledger.Verifier = timing.Track(func() {
		finalClaim, err := driver.Verify(outputValue, outputPoint, networkProof, verifierSrc)
		if err != nil {
			verifyErr = err
			return
		}
		expected := net.Input.Evaluate(finalClaim.Point)
		if !expected.Equal(finalClaim.Value) {
			verifyErr = fmt.Errorf("safetynets: final input check failed")
		}
	})

	log.Info().
		Dur("unverifiable", ledger.Unverifiable).
		Dur("prover", ledger.Prover).
		Dur("verifier", ledger.Verifier).
		Msg("run complete")

	return verifyErr
}
