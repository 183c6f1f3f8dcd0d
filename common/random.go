package common

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// CoinFlip returns -1 or +1 with equal probability.
func CoinFlip(r *rand.Rand) float64 {
	if r.Uint32()%2 == 0 {
		return -1
	}
	return 1
}

// DiagonalDirection returns a unit vector whose components are each a coin
// flip of ±1 before normalization, so every ball launches at 45 degrees.
func DiagonalDirection(r *rand.Rand) cp.Vector {
	return cp.Vector{X: CoinFlip(r), Y: CoinFlip(r)}.Normalize()
}
