// Package search runs the exhaustive (gamma, beta) sweep that minimizes the
// expected portfolio cost of one QAOA layer.
package search

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aristath/quantumfolio/internal/evolve"
	"github.com/aristath/quantumfolio/internal/measure"
)

// Result is the outcome of a grid search: the first pair, in enumeration
// order, reaching the minimum expected cost.
type Result struct {
	Gamma      float64
	Beta       float64
	Cost       float64
	GammaIndex int
	BetaIndex  int
}

// Searcher sweeps a grid with a fixed layer and initial state. Every sample
// is an independent pure function of its angles, so gamma rows can be
// partitioned across workers without changing the outcome.
type Searcher struct {
	layer *evolve.Layer
	diag  []float64
	log   zerolog.Logger

	// Workers sets the parallelism of the sweep; values below 2 run
	// sequentially.
	Workers int

	// SkipNumericalErrors makes the sweep log and skip samples whose
	// evolution produces non-finite values instead of aborting. A skipped
	// sample is never a candidate minimum.
	SkipNumericalErrors bool
}

// New builds a sequential, fail-fast searcher.
func New(layer *evolve.Layer, diag []float64, log zerolog.Logger) *Searcher {
	return &Searcher{
		layer:   layer,
		diag:    diag,
		log:     log,
		Workers: 1,
	}
}

// Run evaluates every (gamma, beta) pair in row-major order and returns the
// minimizer. Ties keep the earliest pair, so repeated runs on identical
// inputs are bit-identical, sequential or parallel.
func (s *Searcher) Run(ctx context.Context, grid Grid, psi0 []complex128) (Result, error) {
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}

	s.log.Debug().
		Int("gammas", len(grid.Gammas)).
		Int("betas", len(grid.Betas)).
		Int("workers", s.Workers).
		Msg("starting parameter sweep")

	var best Result
	var err error
	if s.Workers < 2 || len(grid.Gammas) < 2 {
		best, err = s.sweepRows(ctx, grid, psi0, 0, len(grid.Gammas))
	} else {
		best, err = s.runParallel(ctx, grid, psi0)
	}
	if err != nil {
		return Result{}, err
	}
	if best.GammaIndex < 0 {
		return Result{}, fmt.Errorf("no valid sample in %d-point grid", grid.Size())
	}
	return best, nil
}

// sweepRows evaluates gamma rows [from, to) and returns the local best. A
// result with GammaIndex -1 means every sample in the range was skipped.
func (s *Searcher) sweepRows(ctx context.Context, grid Grid, psi0 []complex128, from, to int) (Result, error) {
	best := Result{Cost: math.Inf(1), GammaIndex: -1, BetaIndex: -1}

	for gi := from; gi < to; gi++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		gamma := grid.Gammas[gi]
		for bi, beta := range grid.Betas {
			psi, err := s.layer.Apply(gamma, beta, psi0)
			if err != nil {
				if s.SkipNumericalErrors {
					s.log.Warn().Err(err).Float64("gamma", gamma).Float64("beta", beta).Msg("skipping sample")
					continue
				}
				return Result{}, err
			}

			cost := measure.Expectation(psi, s.diag)
			if math.IsNaN(cost) || math.IsInf(cost, 0) {
				if s.SkipNumericalErrors {
					s.log.Warn().Float64("gamma", gamma).Float64("beta", beta).Msg("skipping non-finite expectation")
					continue
				}
				return Result{}, fmt.Errorf("non-finite expectation at gamma=%v beta=%v", gamma, beta)
			}

			if cost < best.Cost {
				best = Result{Gamma: gamma, Beta: beta, Cost: cost, GammaIndex: gi, BetaIndex: bi}
			}
		}
	}

	return best, nil
}

// runParallel partitions the gamma rows into contiguous chunks and merges
// the per-chunk minima by (cost, enumeration order). Each sample's value is
// independent of the partitioning, so the merged result equals the
// sequential one exactly.
func (s *Searcher) runParallel(ctx context.Context, grid Grid, psi0 []complex128) (Result, error) {
	workers := s.Workers
	if workers > len(grid.Gammas) {
		workers = len(grid.Gammas)
	}

	locals := make([]Result, workers)
	g, ctx := errgroup.WithContext(ctx)

	rows := len(grid.Gammas)
	for w := 0; w < workers; w++ {
		w := w
		from := w * rows / workers
		to := (w + 1) * rows / workers
		g.Go(func() error {
			local, err := s.sweepRows(ctx, grid, psi0, from, to)
			if err != nil {
				return err
			}
			locals[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Workers cover ascending row ranges, so with strict less-than the
	// earliest-enumerated minimizer survives the merge.
	best := Result{Cost: math.Inf(1), GammaIndex: -1, BetaIndex: -1}
	for _, local := range locals {
		if local.GammaIndex < 0 {
			continue
		}
		if local.Cost < best.Cost {
			best = local
		}
	}
	return best, nil
}
