package measure

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestExpectationUniformState(t *testing.T) {
	// On the uniform superposition the expectation is the mean of the
	// diagonal.
	amp := complex(0.5, 0)
	psi := []complex128{amp, amp, amp, amp}
	diag := []float64{0, 1, 1, 2}

	if got, want := Expectation(psi, diag), 1.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Expectation() = %v, want %v", got, want)
	}
}

func TestExpectationBasisState(t *testing.T) {
	// A pure basis state picks out its own diagonal entry.
	psi := []complex128{0, 0, 1, 0}
	diag := []float64{3, 5, 7, 11}
	if got := Expectation(psi, diag); got != 7 {
		t.Errorf("Expectation() = %v, want 7", got)
	}
}

func TestExpectationComplexPhasesIrrelevant(t *testing.T) {
	// Only magnitudes matter; a global or relative phase leaves the
	// expectation unchanged.
	inv := 1 / math.Sqrt(2)
	plain := []complex128{complex(inv, 0), complex(inv, 0)}
	phased := []complex128{complex(0, inv), complex(-inv, 0)}
	diag := []float64{2, 4}

	a := Expectation(plain, diag)
	b := Expectation(phased, diag)
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("expectations differ under phase: %v vs %v", a, b)
	}
}

func TestProbabilitiesSumToOne(t *testing.T) {
	inv := 1 / math.Sqrt(8)
	psi := make([]complex128, 8)
	for s := range psi {
		psi[s] = complex(inv, 0)
	}

	probs := Probabilities(psi)
	if got := floats.Sum(probs); math.Abs(got-1) > 1e-12 {
		t.Errorf("probabilities sum to %v, want 1", got)
	}
}

func TestMostProbable(t *testing.T) {
	tests := []struct {
		name     string
		psi      []complex128
		want     int
		wantProb float64
	}{
		{"Dominant middle", []complex128{0.1, 0.9, 0.2}, 1, 0.81},
		{"Dominant imaginary", []complex128{0.1, complex(0, 0.9), 0.2}, 1, 0.81},
		{"Tie takes lowest index", []complex128{0.5, 0.5, 0.5, 0.5}, 0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, prob := MostProbable(tt.psi)
			if got != tt.want {
				t.Errorf("MostProbable() index = %d, want %d", got, tt.want)
			}
			if math.Abs(prob-tt.wantProb) > 1e-12 {
				t.Errorf("MostProbable() prob = %v, want %v", prob, tt.wantProb)
			}
		})
	}
}
