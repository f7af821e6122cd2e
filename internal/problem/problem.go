// Package problem defines a portfolio-selection instance and the per-state
// cost decomposition used by the Hamiltonian builders and the reporter.
package problem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/quantumfolio/internal/basis"
)

// DefaultTargetAssets is the cardinality the soft constraint pulls
// selections towards when no explicit target is configured.
const DefaultTargetAssets = 2

// Problem is one portfolio-selection instance: pick a subset of Assets
// assets minimizing x^T Risk x plus a soft penalty on deviating from the
// target cardinality.
type Problem struct {
	// Assets is the number of assets, one qubit each. The state space has
	// dimension 2^Assets.
	Assets int

	// Risk is the Assets×Assets quadratic risk matrix Q.
	Risk *mat.Dense

	// Penalty weights the squared cardinality deviation.
	Penalty float64

	// TargetAssets is the desired number of selected assets.
	TargetAssets int
}

// New builds a problem instance with the default target cardinality.
// risk is given in row-major order, assets×assets.
func New(assets int, risk []float64, penalty float64) (*Problem, error) {
	if assets < 1 {
		return nil, fmt.Errorf("asset count must be positive, got %d", assets)
	}
	if len(risk) != assets*assets {
		return nil, fmt.Errorf("risk matrix has %d entries, want %d×%d", len(risk), assets, assets)
	}
	p := &Problem{
		Assets:       assets,
		Risk:         mat.NewDense(assets, assets, risk),
		Penalty:      penalty,
		TargetAssets: DefaultTargetAssets,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate rejects malformed instances before any Hamiltonian is built.
func (p *Problem) Validate() error {
	if p.Assets < 1 {
		return fmt.Errorf("asset count must be positive, got %d", p.Assets)
	}
	if p.Risk == nil {
		return fmt.Errorf("risk matrix is required")
	}
	rows, cols := p.Risk.Dims()
	if rows != p.Assets || cols != p.Assets {
		return fmt.Errorf("risk matrix is %d×%d, want %d×%d", rows, cols, p.Assets, p.Assets)
	}
	if p.Penalty < 0 {
		return fmt.Errorf("penalty must be non-negative, got %v", p.Penalty)
	}
	if p.TargetAssets < 0 {
		return fmt.Errorf("target asset count must be non-negative, got %d", p.TargetAssets)
	}
	return nil
}

// Dim returns the state-space dimension 2^Assets.
func (p *Problem) Dim() int {
	return basis.Dim(p.Assets)
}

// StateBreakdown decomposes the cost of one basis state the way the report
// table presents it: raw quadratic risk, selected asset count, and the
// unweighted squared cardinality deviation.
type StateBreakdown struct {
	Index     int
	Bits      []int
	Risk      float64
	Assets    int
	Violation float64
}

// Cost is the diagonal cost entry for this state under penalty weighting.
func (b StateBreakdown) Cost(penalty float64) float64 {
	return b.Risk + penalty*b.Violation
}

// Breakdown evaluates one basis state.
func (p *Problem) Breakdown(s int) StateBreakdown {
	x := basis.Decode(s, p.Assets)
	selected := basis.PopCount(x)
	deviation := float64(selected - p.TargetAssets)

	xv := mat.NewVecDense(p.Assets, nil)
	for i, bit := range x {
		xv.SetVec(i, float64(bit))
	}

	return StateBreakdown{
		Index:     s,
		Bits:      x,
		Risk:      mat.Inner(xv, p.Risk, xv),
		Assets:    selected,
		Violation: deviation * deviation,
	}
}

// Table enumerates every basis state in increasing index order.
func (p *Problem) Table() []StateBreakdown {
	dim := p.Dim()
	table := make([]StateBreakdown, dim)
	for s := 0; s < dim; s++ {
		table[s] = p.Breakdown(s)
	}
	return table
}
