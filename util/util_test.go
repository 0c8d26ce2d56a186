package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomOccupancy(t *testing.T) {
	rng := NewRNG(7)

	for i := 0; i < 20; i++ {
		occ := rng.RandomOccupancy(12, 5)
		assert.Equal(t, uint(12), occ.Len())
		assert.Equal(t, uint(5), occ.Count())
	}
}

func TestRandomMove(t *testing.T) {
	rng := NewRNG(7)
	occ := rng.RandomOccupancy(10, 4)

	for i := 0; i < 50; i++ {
		from, to, ok := rng.RandomMove(occ)
		require.True(t, ok)
		assert.True(t, occ.Test(uint(from)))
		assert.False(t, occ.Test(uint(to)))
	}
}

func TestRandomMoveDegenerate(t *testing.T) {
	rng := NewRNG(1)

	_, _, ok := rng.RandomMove(rng.RandomOccupancy(4, 0))
	assert.False(t, ok)

	_, _, ok = rng.RandomMove(rng.RandomOccupancy(4, 4))
	assert.False(t, ok)
}
