// Package basis maps between integer basis-state indices and binary
// asset-selection vectors.
//
// A basis state of an n-qubit register is an integer s in [0, 2^n). Its
// binary vector uses most-significant-bit-first ordering, so Decode(s, n)
// matches the zero-padded binary string of s: bit i of the vector is
// (s >> (n-1-i)) & 1.
package basis

import "strings"

// Dim returns the dimension of the n-qubit state space, 2^n.
func Dim(n int) int {
	return 1 << n
}

// Decode expands the basis index s into its n-bit binary vector,
// most-significant bit first.
//
// s must lie in [0, 2^n); callers validate the problem instance before
// enumerating states, so an out-of-range index is a programming error.
func Decode(s, n int) []int {
	x := make([]int, n)
	for i := 0; i < n; i++ {
		x[i] = (s >> (n - 1 - i)) & 1
	}
	return x
}

// Encode is the inverse of Decode: it packs a binary vector back into its
// basis index.
func Encode(x []int) int {
	s := 0
	for _, bit := range x {
		s = s<<1 | (bit & 1)
	}
	return s
}

// PopCount returns the number of selected assets (1-bits) in x.
func PopCount(x []int) int {
	count := 0
	for _, bit := range x {
		count += bit & 1
	}
	return count
}

// String renders x as a binary string, most-significant bit first, matching
// the zero-padded representation of its basis index.
func String(x []int) string {
	var sb strings.Builder
	sb.Grow(len(x))
	for _, bit := range x {
		if bit&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
