package random

import (
	"crypto/rand"
	"math/big"
)

// Random picks indexes so automated players can be driven deterministically in tests.
type Random interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

type CryptoRandom struct{}

func New() *CryptoRandom {
	return &CryptoRandom{}
}

func (that *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}

	return int(result.Int64())
}
