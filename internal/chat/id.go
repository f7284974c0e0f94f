package chat

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// idLength matches the short ids used throughout the persisted snapshot.
const idLength = 8

// RandomSource is the entropy the store draws from for ids, response picks
// and delay jitter. Injectable so tests can run deterministically.
type RandomSource interface {
	Int64N(n int64) int64
	Float64() float64
}

type pcgSource struct {
	rng *rand.Rand
}

func (s pcgSource) Int64N(n int64) int64 { return s.rng.Int64N(n) }
func (s pcgSource) Float64() float64     { return s.rng.Float64() }

// NewRandomSource returns a source seeded from a fresh UUID, so independent
// stores in one process do not share a stream.
func NewRandomSource() RandomSource {
	u := uuid.New()
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])
	return pcgSource{rng: rand.New(rand.NewPCG(hi, lo))}
}

// NewSeededSource returns a deterministic source for tests.
func NewSeededSource(seed uint64) RandomSource {
	return pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// GenerateID produces a short opaque base-36 identifier. There is no
// uniqueness guarantee beyond the size of the random space.
func GenerateID(src RandomSource) string {
	const max36 = int64(2821109907456) // 36^8
	n := src.Int64N(max36)
	s := strconv.FormatInt(n, 36)
	for len(s) < idLength {
		s = "0" + s
	}
	return s
}
