package fermigo_test

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/fermigo"
	"github.com/hupe1980/fermigo/linalg"
	"github.com/hupe1980/fermigo/model"
)

func Example() {
	// Four plane-wave orbitals on a two-site lattice, two fermions.
	lat := model.Lattice{LocalDim: 2, Length: 2}
	ham := model.RingHamiltonian(lat.Orbitals())

	occ := bitset.New(4)
	occ.Set(0)
	occ.Set(2)

	cfg, err := fermigo.New(2, occ, lat, ham)
	if err != nil {
		panic(err)
	}
	fmt.Println("fock state:", cfg.FockState())

	// Measure the particle number on site 0 — diagonal, ratio 1.
	value, err := cfg.LocalEstimator([]int{0}, []*linalg.Sparse{fermigo.NumberOperator(2)})
	if err != nil {
		panic(err)
	}
	fmt.Printf("<n_0> = %.1f\n", real(value))

	// Accepted move: particle 0 hops from orbital 0 to orbital 1.
	if err := cfg.FastUpdate([]int{0}, []int{1}); err != nil {
		panic(err)
	}
	fmt.Println("after hop:", cfg.FockState())

	// Output:
	// fock state: [1 1]
	// <n_0> = 1.0
	// after hop: [2 1]
}

func ExampleConfiguration_RefreshSlater() {
	lat := model.Lattice{LocalDim: 1, Length: 8}
	ham := model.RingHamiltonian(8)

	occ := bitset.New(8)
	for _, orb := range []uint{0, 2, 4, 6} {
		occ.Set(orb)
	}

	cfg, err := fermigo.New(4, occ, lat, ham)
	if err != nil {
		panic(err)
	}

	// Long walks refresh periodically to shed floating-point drift.
	if err := cfg.FastUpdate([]int{0}, []int{1}); err != nil {
		panic(err)
	}
	if err := cfg.RefreshSlater(); err != nil {
		panic(err)
	}

	fmt.Println(cfg.ParticleCount(), "particles")
	// Output:
	// 4 particles
}
