package problem

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// MaxAssets is the hard ceiling on instance size. The dense mixing operator
// and its eigenbasis each hold 2^(2n) float64 entries, which past this point
// stops fitting on commodity hardware.
const MaxAssets = 15

// EstimateFootprint returns the approximate peak memory in bytes needed for
// the dense operators of this instance: the mixing Hamiltonian, its
// eigenvector matrix, and the complex working vectors of one evolution.
func (p *Problem) EstimateFootprint() uint64 {
	dim := uint64(1) << uint(p.Assets)
	matrixBytes := dim * dim * 8 // float64 entries
	vectorBytes := dim * 16      // complex128 entries
	return 2*matrixBytes + 8*vectorBytes
}

// CheckResources rejects instances whose dense operators cannot fit in the
// memory currently available on this machine. Failing here is a
// configuration error, not a mid-search crash.
func (p *Problem) CheckResources() error {
	if p.Assets > MaxAssets {
		return fmt.Errorf("instance with %d assets exceeds the supported maximum of %d", p.Assets, MaxAssets)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("reading system memory: %w", err)
	}

	need := p.EstimateFootprint()
	if need > vm.Available {
		return fmt.Errorf("instance needs about %d MiB for dense operators, only %d MiB available",
			need/(1<<20), vm.Available/(1<<20))
	}
	return nil
}
