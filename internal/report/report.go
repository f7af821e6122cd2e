// Package report renders the outcome of a parameter sweep: the optimal
// angles, the most probable selection, and the full state table.
package report

import (
	"fmt"
	"io"

	"github.com/aristath/quantumfolio/internal/basis"
	"github.com/aristath/quantumfolio/internal/measure"
	"github.com/aristath/quantumfolio/internal/problem"
	"github.com/aristath/quantumfolio/internal/search"
)

// Reporter writes human-readable results to a single destination.
type Reporter struct {
	w io.Writer
}

// New wraps the destination writer.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Print writes the optimal parameters, the most probable state under the
// optimal evolution psi, and the exhaustive state table for the instance.
func (r *Reporter) Print(p *problem.Problem, res search.Result, psi []complex128) error {
	idx, prob := measure.MostProbable(psi)
	b := p.Breakdown(idx)

	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(r.w, format, args...)
		}
	}

	write("Optimal parameters:\n")
	write("  gamma = %.6f\n", res.Gamma)
	write("  beta  = %.6f\n", res.Beta)
	write("  expected cost = %.6f\n\n", res.Cost)

	write("Most probable state: %s (probability %.4f)\n", basis.String(b.Bits), prob)
	write("  cost = %.6f\n", b.Cost(p.Penalty))
	write("  selected assets: %v\n", selectedAssets(b.Bits))
	write("  risk (quadratic term) = %.6f\n\n", b.Risk)

	write("All states:\n")
	for _, row := range p.Table() {
		write("  %s: risk = %.3f, assets = %d, violation = %.0f\n",
			basis.String(row.Bits), row.Risk, row.Assets, row.Violation)
	}
	return err
}

// selectedAssets lists the indices of the 1-bits in x.
func selectedAssets(x []int) []int {
	selected := make([]int, 0, len(x))
	for i, bit := range x {
		if bit == 1 {
			selected = append(selected, i)
		}
	}
	return selected
}
