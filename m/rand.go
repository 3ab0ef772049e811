package m

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/MichaelTJones/pcg"
)

// Go does not support thread locals so instead we use a separate state per
// goroutine. A RandState must not be used by two goroutines at once.
type RandState struct {
	r *pcg.PCG32
}

// NewRand returns a generator seeded from the OS entropy source.
func NewRand() *RandState {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		binary.LittleEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
	}
	return NewRandSeeded(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	)
}

// NewRandSeeded returns a deterministic generator. Generators with the same
// seed but a different stream produce independent sequences, so workers can
// share a seed and use their index as the stream.
func NewRandSeeded(seed, stream uint64) *RandState {
	r := pcg.NewPCG32()
	r.Seed(seed, stream)
	return &RandState{r: r}
}

// Rand returns a uniformly distributed value in [0,1). Only the top 24 bits
// of the draw are used so the result is exact in float32 and never rounds
// up to 1.
func (rnd *RandState) Rand() Float {
	return Float(rnd.r.Random()>>8) / (1 << 24)
}
