package checkpoint

import "errors"

const (
	// MagicNumber identifies fermigo checkpoint files (ASCII: "FGC1").
	MagicNumber = 0x46474331
	// Version is the current file format version.
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrUnknownCompression = errors.New("unknown compression codec")
)

// fileHeader is the fixed-size header at the start of every checkpoint file.
type fileHeader struct {
	Magic       uint32
	Version     uint32
	Compression [8]byte // codec name, zero-padded
	PayloadLen  uint64  // compressed payload length in bytes
	Checksum    uint32  // CRC32 (IEEE) of the compressed payload
	Reserved    [4]byte
}

// Snapshot is the irreducible walker state written to a checkpoint.
type Snapshot struct {
	Step              uint64 // caller-maintained Monte Carlo step counter
	ParticleCount     int
	LocalDim          int
	Sites             int
	SelectedStates    []int
	ParticleToOrbital []int
}

// Snapshotter is anything that can produce a Snapshot of its current state.
// fermigo.Configuration implements it.
type Snapshotter interface {
	Snapshot() *Snapshot
}
