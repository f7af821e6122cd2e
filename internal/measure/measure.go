// Package measure extracts classical quantities from a state vector: cost
// expectation values and Born-rule probabilities.
package measure

import "math/cmplx"

// Expectation computes the expected cost Σ_s |psi[s]|² · diag[s] against the
// diagonal of the cost Hamiltonian. Consuming the diagonal vector keeps this
// O(2^n); the full matrix is never needed. The result carries no sign
// assumption — it is whatever the diagonal entries weight to.
func Expectation(psi []complex128, diag []float64) float64 {
	total := 0.0
	for s, amp := range psi {
		total += probability(amp) * diag[s]
	}
	return total
}

// Probabilities returns the Born-rule distribution |psi[s]|² over basis
// states.
func Probabilities(psi []complex128) []float64 {
	probs := make([]float64, len(psi))
	for s, amp := range psi {
		probs[s] = probability(amp)
	}
	return probs
}

// MostProbable returns the basis index with the largest probability and that
// probability. Ties resolve to the lowest index.
func MostProbable(psi []complex128) (int, float64) {
	best := 0
	bestProb := 0.0
	for s, amp := range psi {
		if p := probability(amp); p > bestProb {
			best = s
			bestProb = p
		}
	}
	return best, bestProb
}

// probability is the Born rule |amplitude|².
func probability(amp complex128) float64 {
	a := cmplx.Abs(amp)
	return a * a
}
