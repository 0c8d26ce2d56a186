package checkpoint

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Step:              1234,
		ParticleCount:     4,
		LocalDim:          2,
		Sites:             4,
		SelectedStates:    []int{0, 1, 2, 3},
		ParticleToOrbital: []int{6, 0, 3, 5},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(string(compression), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, testSnapshot(), compression))

			got, err := Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, testSnapshot(), got)
		})
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, testSnapshot(), CompressionNone))

	data := buf.Bytes()
	data[0] ^= 0xff

	_, err := Load(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestLoadRejectsCorruptPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, testSnapshot(), CompressionZstd))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	_, err := Load(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestLoadRejectsTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, testSnapshot(), CompressionNone))

	_, err := Load(bytes.NewReader(buf.Bytes()[:buf.Len()-4]))
	assert.Error(t, err)
}

func TestByName(t *testing.T) {
	c, ok := ByName("zstd")
	require.True(t, ok)
	assert.Equal(t, CompressionZstd, c)

	_, ok = ByName("snappy")
	assert.False(t, ok)
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walker", "state.fgc")

	require.NoError(t, SaveFile(path, testSnapshot(), CompressionLZ4))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}

type staticSnapshotter struct{ snap *Snapshot }

func (s staticSnapshotter) Snapshot() *Snapshot { return s.snap }

func TestManagerRateLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.fgc")
	m := NewManager(path, func(o *ManagerOptions) {
		o.MinInterval = time.Hour
	})
	s := staticSnapshotter{snap: testSnapshot()}

	written, err := m.Maybe(s)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = m.Maybe(s)
	require.NoError(t, err)
	assert.False(t, written)

	require.NoError(t, m.Force(s))
	assert.Equal(t, uint64(2), m.Written())

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}
