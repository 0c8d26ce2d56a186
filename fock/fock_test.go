package fock

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupancyFromBits(bits []int) *bitset.BitSet {
	b := bitset.New(uint(len(bits)))
	for i, v := range bits {
		if v != 0 {
			b.Set(uint(i))
		}
	}
	return b
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		bits     []int
		localDim int
		sites    int
		want     State
	}{
		{
			name:     "two sites one orbital each",
			bits:     []int{1, 0, 1, 0},
			localDim: 2,
			sites:    2,
			want:     State{1, 1},
		},
		{
			name:     "second local orbital",
			bits:     []int{0, 1, 1, 0},
			localDim: 2,
			sites:    2,
			want:     State{2, 1},
		},
		{
			name:     "empty site",
			bits:     []int{1, 1, 0, 0},
			localDim: 2,
			sites:    2,
			want:     State{3, 0},
		},
		{
			name:     "single site full",
			bits:     []int{1, 1, 1},
			localDim: 3,
			sites:    1,
			want:     State{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(occupancyFromBits(tt.bits), tt.localDim, tt.sites)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeLengthMismatch(t *testing.T) {
	_, err := Encode(bitset.New(4), 2, 3)

	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 6, lm.Expected)
	assert.Equal(t, 4, lm.Actual)
}

func TestDecode(t *testing.T) {
	occupancy := Decode(State{2, 1}, 2)

	assert.Equal(t, uint(4), occupancy.Len())
	assert.False(t, occupancy.Test(0))
	assert.True(t, occupancy.Test(1))
	assert.True(t, occupancy.Test(2))
	assert.False(t, occupancy.Test(3))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, dims := range [][2]int{{1, 8}, {2, 4}, {3, 5}, {4, 2}} {
		localDim, sites := dims[0], dims[1]
		for trial := 0; trial < 50; trial++ {
			occupancy := bitset.New(uint(localDim * sites))
			for i := 0; i < localDim*sites; i++ {
				if rng.Intn(2) == 1 {
					occupancy.Set(uint(i))
				}
			}

			state, err := Encode(occupancy, localDim, sites)
			require.NoError(t, err)
			require.True(t, Decode(state, localDim).Equal(occupancy))
		}
	}
}

func TestSiteOrbital(t *testing.T) {
	tests := []struct {
		orbital  int
		localDim int
		site     int
		local    int
	}{
		{0, 2, 0, 0},
		{1, 2, 0, 1},
		{2, 2, 1, 0},
		{3, 2, 1, 1},
		{7, 3, 2, 1},
	}

	for _, tt := range tests {
		site, local := SiteOrbital(tt.orbital, tt.localDim)
		assert.Equal(t, tt.site, site)
		assert.Equal(t, tt.local, local)
		assert.Equal(t, tt.orbital, Orbital(site, local, tt.localDim))
	}
}

func TestLocalDimFock(t *testing.T) {
	assert.Equal(t, 2, LocalDimFock(1))
	assert.Equal(t, 4, LocalDimFock(2))
	assert.Equal(t, 16, LocalDimFock(4))
}
