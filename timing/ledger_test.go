package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddAccumulates(t *testing.T) {
	a := Set(1*time.Second, 2*time.Second, 3*time.Second)
	b := Set(1*time.Second, 1*time.Second, 1*time.Second)
	total := a.Add(b)
	assert.Equal(t, 2*time.Second, total.Unverifiable)
	assert.Equal(t, 3*time.Second, total.Prover)
	assert.Equal(t, 4*time.Second, total.Verifier)
}

func TestTrackMeasuresElapsed(t *testing.T) {
	d := Track(func() { time.Sleep(time.Millisecond) })
	assert.GreaterOrEqual(t, d, time.Millisecond)
}
