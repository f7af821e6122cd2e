// Package evolve applies one QAOA layer to a state vector: a diagonal cost
// phase followed by evolution under the dense mixing Hamiltonian.
package evolve

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/quantumfolio/internal/basis"
)

// MixingPropagator applies exp(-i*beta*H_M) to a state vector.
type MixingPropagator interface {
	Propagate(beta float64, psi []complex128) ([]complex128, error)
}

// Layer is one QAOA alternation: the cost unitary exp(-i*gamma*H_C) applied
// first, then the mixing unitary exp(-i*beta*H_M). Both factors are unitary,
// so the output stays unit-norm without renormalization.
type Layer struct {
	diag []float64
	prop MixingPropagator
}

// NewLayer builds a layer from the cost diagonal and a mixing propagator.
func NewLayer(diag []float64, prop MixingPropagator) *Layer {
	return &Layer{diag: diag, prop: prop}
}

// Apply evolves psi0 through the layer. The cost phase exploits diagonality
// for O(2^n) work; the mixing step dominates. psi0 is not modified.
func (l *Layer) Apply(gamma, beta float64, psi0 []complex128) ([]complex128, error) {
	if len(psi0) != len(l.diag) {
		return nil, fmt.Errorf("state has %d amplitudes, cost diagonal has %d", len(psi0), len(l.diag))
	}

	phased := make([]complex128, len(psi0))
	for s, amp := range psi0 {
		phased[s] = amp * cmplx.Exp(complex(0, -gamma*l.diag[s]))
	}

	psi, err := l.prop.Propagate(beta, phased)
	if err != nil {
		return nil, fmt.Errorf("mixing evolution at gamma=%v beta=%v: %w", gamma, beta, err)
	}
	if !finite(psi) {
		return nil, fmt.Errorf("non-finite amplitude at gamma=%v beta=%v", gamma, beta)
	}
	return psi, nil
}

// UniformSuperposition returns the equal-amplitude initial state over n
// qubits, amplitude 1/sqrt(2^n) everywhere.
func UniformSuperposition(n int) []complex128 {
	dim := basis.Dim(n)
	amp := complex(1/math.Sqrt(float64(dim)), 0)
	psi := make([]complex128, dim)
	for s := range psi {
		psi[s] = amp
	}
	return psi
}

// CachedPropagator evolves under a fixed mixing Hamiltonian through its
// eigendecomposition H_M = V Λ V^T, factorized once at construction:
//
//	exp(-i*beta*H_M) psi = V exp(-i*beta*Λ) V^T psi
//
// Factorizing up front turns the per-sample cost from O(2^(3n)) into
// O(2^(2n)), which is what makes a 2500-point grid search tolerable.
type CachedPropagator struct {
	vectors *mat.Dense
	values  []float64
}

// NewCachedPropagator factorizes hm. The mixing Hamiltonian is real
// symmetric, so the eigendecomposition is orthogonal and the resulting
// propagator exactly unitary up to floating-point error.
func NewCachedPropagator(hm *mat.SymDense) (*CachedPropagator, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(hm, true); !ok {
		return nil, fmt.Errorf("mixing hamiltonian eigendecomposition failed to converge")
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	return &CachedPropagator{
		vectors: &vectors,
		values:  eig.Values(nil),
	}, nil
}

// Propagate applies exp(-i*beta*H_M) using the cached eigenbasis.
func (p *CachedPropagator) Propagate(beta float64, psi []complex128) ([]complex128, error) {
	if len(psi) != len(p.values) {
		return nil, fmt.Errorf("state has %d amplitudes, propagator dimension is %d", len(psi), len(p.values))
	}
	return propagateEigen(p.vectors, p.values, beta, psi), nil
}

// DirectPropagator computes the mixing exponential from scratch on every
// call. It exists as the reference implementation the cached variant is
// checked against; the search uses CachedPropagator.
type DirectPropagator struct {
	hm *mat.SymDense
}

// NewDirectPropagator wraps hm without factorizing it.
func NewDirectPropagator(hm *mat.SymDense) *DirectPropagator {
	return &DirectPropagator{hm: hm}
}

// Propagate factorizes the Hamiltonian and applies exp(-i*beta*H_M).
func (p *DirectPropagator) Propagate(beta float64, psi []complex128) ([]complex128, error) {
	dim, _ := p.hm.Dims()
	if len(psi) != dim {
		return nil, fmt.Errorf("state has %d amplitudes, propagator dimension is %d", len(psi), dim)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(p.hm, true); !ok {
		return nil, fmt.Errorf("mixing hamiltonian eigendecomposition failed to converge")
	}
	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	return propagateEigen(&vectors, eig.Values(nil), beta, psi), nil
}

// propagateEigen computes V exp(-i*beta*Λ) V^T psi. The complex vector is
// carried as separate real and imaginary parts so the orthogonal basis
// changes are plain real matrix-vector products.
func propagateEigen(vectors *mat.Dense, values []float64, beta float64, psi []complex128) []complex128 {
	dim := len(psi)
	re := mat.NewVecDense(dim, nil)
	im := mat.NewVecDense(dim, nil)
	for s, amp := range psi {
		re.SetVec(s, real(amp))
		im.SetVec(s, imag(amp))
	}

	// Into the eigenbasis.
	coefRe := mat.NewVecDense(dim, nil)
	coefIm := mat.NewVecDense(dim, nil)
	coefRe.MulVec(vectors.T(), re)
	coefIm.MulVec(vectors.T(), im)

	// Phase each eigencomponent by exp(-i*beta*lambda).
	for k := 0; k < dim; k++ {
		c := complex(coefRe.AtVec(k), coefIm.AtVec(k)) * cmplx.Exp(complex(0, -beta*values[k]))
		coefRe.SetVec(k, real(c))
		coefIm.SetVec(k, imag(c))
	}

	// Back to the computational basis.
	re.MulVec(vectors, coefRe)
	im.MulVec(vectors, coefIm)

	out := make([]complex128, dim)
	for s := range out {
		out[s] = complex(re.AtVec(s), im.AtVec(s))
	}
	return out
}

func finite(psi []complex128) bool {
	for _, amp := range psi {
		if cmplx.IsNaN(amp) || cmplx.IsInf(amp) {
			return false
		}
	}
	return true
}
