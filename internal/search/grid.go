package search

import (
	"fmt"
	"math"
)

// Default grid resolution, matching the canonical 50×50 sweep.
const (
	DefaultGammaPoints = 50
	DefaultBetaPoints  = 50
)

// Grid holds the candidate angles, gammas over [0, 2π) and betas over
// [0, π). Enumeration is row-major: every beta for one gamma before the next
// gamma.
type Grid struct {
	Gammas []float64
	Betas  []float64
}

// Uniform returns points values evenly stepped over [0, max): the lower
// bound is included, the upper is not.
func Uniform(points int, max float64) []float64 {
	vals := make([]float64, points)
	step := max / float64(points)
	for i := range vals {
		vals[i] = float64(i) * step
	}
	return vals
}

// NewGrid builds a uniform grid with the given resolutions over the standard
// angle ranges.
func NewGrid(gammaPoints, betaPoints int) (Grid, error) {
	if gammaPoints < 1 || betaPoints < 1 {
		return Grid{}, fmt.Errorf("grid resolution must be positive, got %d×%d", gammaPoints, betaPoints)
	}
	return Grid{
		Gammas: Uniform(gammaPoints, 2*math.Pi),
		Betas:  Uniform(betaPoints, math.Pi),
	}, nil
}

// DefaultGrid returns the 50×50 grid.
func DefaultGrid() Grid {
	g, _ := NewGrid(DefaultGammaPoints, DefaultBetaPoints)
	return g
}

// Validate rejects degenerate grids.
func (g Grid) Validate() error {
	if len(g.Gammas) == 0 || len(g.Betas) == 0 {
		return fmt.Errorf("search grid must not be empty, got %d gammas and %d betas", len(g.Gammas), len(g.Betas))
	}
	return nil
}

// Size is the number of (gamma, beta) samples.
func (g Grid) Size() int {
	return len(g.Gammas) * len(g.Betas)
}
