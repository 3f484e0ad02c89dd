package pool

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts the uniform generator behind prize draws so tests
// can inject a seeded one.
type RandomSource interface {
	Float64() float64 // uniform in [0, 1)
}

// cryptoSource reads 53 random bits from crypto/rand, falling back to
// math/rand/v2 if the platform reader fails.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultSource is the platform generator used outside tests.
func DefaultSource() RandomSource { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeededSource returns a deterministic generator for reproducible draws.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
