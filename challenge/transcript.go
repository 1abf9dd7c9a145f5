package challenge

import (
	"encoding/binary"

	"github.com/zghodsi/safetynets-gkr/field"
	"golang.org/x/crypto/sha3"
)

// Transcript draws challenges by squeezing a SHAKE-256 extendable-output
// function over everything the prover has sent so far, plus a running
// counter to keep successive draws within one round distinct. This is the
// public-coin, production-grade alternative spec.md §9 anticipates
// ("a public-coin transcript hash for production"); it is never used by
// default (spec.md's Non-goals explicitly exclude Fiat-Shamir as the
// baseline), but the kernel is indifferent to which Source it is handed.
//
// Grounded on JonasLazardGIT-SPRUCE/PIOP/fs_helpers.go's XOF/Expand pattern,
// simplified to a single running digest rather than a four-round grinding
// schedule (SafetyNets has no proof-of-work grinding step).
type Transcript struct {
	state []byte
	round uint64
}

// NewTranscript seeds a Transcript with salt (e.g. a hash of the public
// architecture and claimed output).
func NewTranscript(salt []byte) *Transcript {
	return &Transcript{state: append([]byte(nil), salt...)}
}

// Observe absorbs the byte encoding of values into the running transcript.
func (tr *Transcript) Observe(values []field.Element) {
	for _, v := range values {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		tr.state = append(tr.state, buf[:]...)
	}
}

// Next squeezes the next challenge from the transcript state and a
// monotonic round counter, then folds the squeezed bytes back into the
// state so consecutive draws within the same round differ.
func (tr *Transcript) Next() field.Element {
	h := sha3.NewShake256()
	_, _ = h.Write(tr.state)
	var counterBuf [8]byte
	binary.LittleEndian.PutUint64(counterBuf[:], tr.round)
	_, _ = h.Write(counterBuf[:])
	tr.round++

	out := make([]byte, 8)
	_, _ = h.Read(out)
	tr.state = append(tr.state, out...)

	return field.FromUint64(binary.LittleEndian.Uint64(out))
}
