package checkpoint

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
)

// Save writes a snapshot to w with the given compression codec.
func Save(w io.Writer, snap *Snapshot, compression Compression) error {
	payload, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	compressed, err := compress(payload, compression)
	if err != nil {
		return err
	}

	header := fileHeader{
		Magic:      MagicNumber,
		Version:    Version,
		PayloadLen: uint64(len(compressed)),
		Checksum:   crc32.ChecksumIEEE(compressed),
	}
	copy(header.Compression[:], compression)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// Load reads a snapshot from r, verifying magic, version and checksum.
func Load(r io.Reader) (*Snapshot, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, header.Version)
	}

	name := string(bytes.TrimRight(header.Compression[:], "\x00"))
	compression, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}

	compressed := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if got := crc32.ChecksumIEEE(compressed); got != header.Checksum {
		return nil, fmt.Errorf("%w: header 0x%08x, payload 0x%08x", ErrChecksumMismatch, header.Checksum, got)
	}

	payload, err := decompress(compressed, compression)
	if err != nil {
		return nil, err
	}

	return decodeSnapshot(payload)
}

// SaveFile writes a snapshot atomically: to a temp file in the target
// directory, then renamed over the destination.
func SaveFile(path string, snap *Snapshot, compression Compression) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create checkpoint directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Save(tmp, snap, compression); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// LoadFile reads a snapshot from a file written by SaveFile.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path is configurable
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

func encodeSnapshot(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	for _, v := range []uint64{
		snap.Step,
		uint64(snap.ParticleCount),
		uint64(snap.LocalDim),
		uint64(snap.Sites),
	} {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}

	for _, list := range [][]int{snap.SelectedStates, snap.ParticleToOrbital} {
		if err := binary.Write(&buf, binary.LittleEndian, uint64(len(list))); err != nil {
			return nil, err
		}
		for _, v := range list {
			if err := binary.Write(&buf, binary.LittleEndian, int64(v)); err != nil {
				return nil, err
			}
		}
	}

	return buf.Bytes(), nil
}

func decodeSnapshot(payload []byte) (*Snapshot, error) {
	r := bytes.NewReader(payload)
	snap := &Snapshot{}

	var scalars [4]uint64
	for i := range scalars {
		if err := binary.Read(r, binary.LittleEndian, &scalars[i]); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
	}
	snap.Step = scalars[0]
	snap.ParticleCount = int(scalars[1])
	snap.LocalDim = int(scalars[2])
	snap.Sites = int(scalars[3])

	for _, dst := range []*[]int{&snap.SelectedStates, &snap.ParticleToOrbital} {
		var n uint64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		if n > uint64(r.Len()) {
			return nil, fmt.Errorf("decode snapshot: truncated list of %d entries", n)
		}
		list := make([]int, n)
		for i := range list {
			var v int64
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, fmt.Errorf("decode snapshot: %w", err)
			}
			list[i] = int(v)
		}
		*dst = list
	}

	return snap, nil
}
