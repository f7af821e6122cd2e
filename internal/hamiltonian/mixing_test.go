package hamiltonian

import (
	"fmt"
	"testing"
)

func TestMixingSingleQubit(t *testing.T) {
	hm := Mixing(1)
	want := [][]float64{
		{0, 1},
		{1, 0},
	}
	for r := range want {
		for c := range want[r] {
			if hm.At(r, c) != want[r][c] {
				t.Errorf("At(%d,%d) = %v, want %v", r, c, hm.At(r, c), want[r][c])
			}
		}
	}
}

func TestMixingTwoQubits(t *testing.T) {
	// Each row connects a state to the n states one bit-flip away, with the
	// leftmost tensor factor acting on the most-significant bit.
	hm := Mixing(2)
	want := [][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}
	for r := range want {
		for c := range want[r] {
			if hm.At(r, c) != want[r][c] {
				t.Errorf("At(%d,%d) = %v, want %v", r, c, hm.At(r, c), want[r][c])
			}
		}
	}
}

func TestMixingStructure(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			hm := Mixing(n)
			dim, _ := hm.Dims()
			if dim != 1<<n {
				t.Fatalf("dims = %d, want %d", dim, 1<<n)
			}

			for r := 0; r < dim; r++ {
				rowSum := 0.0
				for c := 0; c < dim; c++ {
					v := hm.At(r, c)
					if v != 0 && v != 1 {
						t.Fatalf("At(%d,%d) = %v, want 0 or 1", r, c, v)
					}
					if v != hm.At(c, r) {
						t.Fatalf("asymmetry at (%d,%d)", r, c)
					}
					rowSum += v
				}
				if rowSum != float64(n) {
					t.Errorf("row %d sums to %v, want %d", r, rowSum, n)
				}
			}
		})
	}
}

func TestMixingConnectsBitFlips(t *testing.T) {
	// Entry (r,c) is 1 exactly when r and c differ in a single bit.
	hm := Mixing(3)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			diff := r ^ c
			want := 0.0
			if diff != 0 && diff&(diff-1) == 0 {
				want = 1.0
			}
			if hm.At(r, c) != want {
				t.Errorf("At(%d,%d) = %v, want %v", r, c, hm.At(r, c), want)
			}
		}
	}
}

func BenchmarkMixing(b *testing.B) {
	for _, n := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Mixing(n)
			}
		})
	}
}
