// Package hamiltonian builds the two operators of one QAOA layer: the
// diagonal cost Hamiltonian encoding the portfolio objective, and the dense
// mixing Hamiltonian driving transitions between selections.
package hamiltonian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aristath/quantumfolio/internal/problem"
)

// CostDiagonal returns the diagonal of the cost Hamiltonian, one entry per
// basis state in increasing index order:
//
//	diag[s] = x^T Q x + penalty * (popcount(x) - target)^2
//
// where x is the MSB-first binary vector of s.
func CostDiagonal(p *problem.Problem) []float64 {
	dim := p.Dim()
	diag := make([]float64, dim)
	for s := 0; s < dim; s++ {
		diag[s] = p.Breakdown(s).Cost(p.Penalty)
	}
	return diag
}

// CostMatrix lifts the diagonal into a full diagonal matrix. The search
// itself only ever consumes the vector; the matrix form exists for callers
// that want the operator as a mat.Matrix.
func CostMatrix(diag []float64) *mat.DiagDense {
	return mat.NewDiagDense(len(diag), diag)
}
