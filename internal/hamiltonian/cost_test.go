package hamiltonian

import (
	"math"
	"testing"

	"github.com/aristath/quantumfolio/internal/problem"
)

func TestCostDiagonalIdentityRisk(t *testing.T) {
	// With identity Q and no penalty the cost of a state is its popcount.
	p, err := problem.New(2, []float64{1, 0, 0, 1}, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	diag := CostDiagonal(p)
	want := []float64{0, 1, 1, 2}
	if len(diag) != len(want) {
		t.Fatalf("CostDiagonal() length = %d, want %d", len(diag), len(want))
	}
	for s := range want {
		if diag[s] != want[s] {
			t.Errorf("diag[%d] = %v, want %v", s, diag[s], want[s])
		}
	}
}

func TestCostDiagonalPenalty(t *testing.T) {
	// Zero risk isolates the penalty term: penalty*(popcount-2)^2.
	p, err := problem.New(2, make([]float64, 4), 10)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	diag := CostDiagonal(p)
	want := []float64{40, 10, 10, 0}
	for s := range want {
		if diag[s] != want[s] {
			t.Errorf("diag[%d] = %v, want %v", s, diag[s], want[s])
		}
	}
}

func TestCostDiagonalCustomTarget(t *testing.T) {
	p, err := problem.New(2, make([]float64, 4), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.TargetAssets = 1

	diag := CostDiagonal(p)
	want := []float64{1, 0, 0, 1}
	for s := range want {
		if diag[s] != want[s] {
			t.Errorf("diag[%d] = %v, want %v", s, diag[s], want[s])
		}
	}
}

func TestCostDiagonalFullInstance(t *testing.T) {
	p, err := problem.New(3, []float64{
		1, 0.5, 0.3,
		0.5, 1, 0.2,
		0.3, 0.2, 1,
	}, 10)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	diag := CostDiagonal(p)
	if len(diag) != 8 {
		t.Fatalf("CostDiagonal() length = %d, want 8", len(diag))
	}

	// State 110 selects the first two assets: risk 3, no violation.
	if math.Abs(diag[0b110]-3) > 1e-12 {
		t.Errorf("diag[110] = %v, want 3", diag[0b110])
	}
	// State 000 selects nothing: pure penalty 10*4.
	if diag[0b000] != 40 {
		t.Errorf("diag[000] = %v, want 40", diag[0b000])
	}
	// State 111 selects everything: risk 5 plus penalty 10.
	if math.Abs(diag[0b111]-15) > 1e-12 {
		t.Errorf("diag[111] = %v, want 15", diag[0b111])
	}
}

func TestCostMatrix(t *testing.T) {
	diag := []float64{0, 1, 1, 2}
	m := CostMatrix(diag)
	r, c := m.Dims()
	if r != 4 || c != 4 {
		t.Fatalf("CostMatrix() dims = %d×%d, want 4×4", r, c)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = diag[i]
			}
			if m.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), want)
			}
		}
	}
}
