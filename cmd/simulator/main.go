package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/aristath/quantumfolio/internal/config"
	"github.com/aristath/quantumfolio/internal/evolve"
	"github.com/aristath/quantumfolio/internal/hamiltonian"
	"github.com/aristath/quantumfolio/internal/problem"
	"github.com/aristath/quantumfolio/internal/report"
	"github.com/aristath/quantumfolio/internal/search"
	"github.com/aristath/quantumfolio/pkg/logger"
)

// The default three-asset instance.
var defaultRisk = []float64{
	1.0, 0.5, 0.3,
	0.5, 1.0, 0.2,
	0.3, 0.2, 1.0,
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	log = logger.WithRun(log, uuid.NewString())

	log.Info().Msg("Starting QAOA portfolio simulator")

	// Build the problem instance
	p, err := problem.New(3, defaultRisk, cfg.Penalty)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid problem instance")
	}
	p.TargetAssets = cfg.TargetAssets
	if err := p.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid problem instance")
	}
	if err := p.CheckResources(); err != nil {
		log.Fatal().Err(err).Msg("Instance does not fit this machine")
	}

	// Build the Hamiltonians and the layer
	start := time.Now()
	diag := hamiltonian.CostDiagonal(p)
	hm := hamiltonian.Mixing(p.Assets)
	prop, err := evolve.NewCachedPropagator(hm)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to factorize mixing Hamiltonian")
	}
	layer := evolve.NewLayer(diag, prop)
	log.Info().
		Int("assets", p.Assets).
		Int("dim", p.Dim()).
		Dur("elapsed", time.Since(start)).
		Msg("Hamiltonians built")

	// Sweep the parameter grid
	grid, err := search.NewGrid(cfg.GammaPoints, cfg.BetaPoints)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid search grid")
	}

	searcher := search.New(layer, diag, log)
	searcher.Workers = cfg.Workers
	searcher.SkipNumericalErrors = cfg.SkipNumericalErrors

	start = time.Now()
	psi0 := evolve.UniformSuperposition(p.Assets)
	res, err := searcher.Run(context.Background(), grid, psi0)
	if err != nil {
		log.Fatal().Err(err).Msg("Parameter sweep failed")
	}
	log.Info().
		Int("samples", grid.Size()).
		Float64("gamma", res.Gamma).
		Float64("beta", res.Beta).
		Float64("cost", res.Cost).
		Dur("elapsed", time.Since(start)).
		Msg("Sweep complete")

	// Re-evolve at the optimum for the final state and report
	psi, err := layer.Apply(res.Gamma, res.Beta, psi0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to evolve optimal state")
	}

	if err := report.New(os.Stdout).Print(p, res, psi); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}
}
