package hamiltonian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aristath/quantumfolio/internal/basis"
)

// pauliX is the single-qubit flip operator.
var pauliX = mat.NewDense(2, 2, []float64{
	0, 1,
	1, 0,
})

var identity2 = mat.NewDense(2, 2, []float64{
	1, 0,
	0, 1,
})

// Mixing returns the mixing Hamiltonian H_M = Σ_i I⊗…⊗X⊗…⊗I over n qubits,
// with the flip operator at tensor position i counted from the
// most-significant qubit. The leftmost Kronecker factor acts on the
// most-significant bit, so the operator's basis ordering matches
// CostDiagonal's.
//
// The result is symmetric with every row summing to n. Building it costs
// O(n·2^(2n)) time and O(2^(2n)) space.
func Mixing(n int) *mat.SymDense {
	dim := basis.Dim(n)
	sum := mat.NewDense(dim, dim, nil)

	for i := 0; i < n; i++ {
		op := singleFlip(n, i)
		sum.Add(sum, op)
	}

	hm := mat.NewSymDense(dim, nil)
	for r := 0; r < dim; r++ {
		for c := r; c < dim; c++ {
			hm.SetSym(r, c, sum.At(r, c))
		}
	}
	return hm
}

// singleFlip embeds X acting on qubit i into the full 2^n space via repeated
// Kronecker products.
func singleFlip(n, i int) *mat.Dense {
	op := mat.NewDense(1, 1, []float64{1})
	for j := 0; j < n; j++ {
		factor := identity2
		if j == i {
			factor = pauliX
		}
		var next mat.Dense
		next.Kronecker(op, factor)
		op = &next
	}
	return op
}
