package checkpoint

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression codec by stable name. The
// name is stored in the file header, so checkpoints are self-describing.
type Compression string

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = "none"
	// CompressionZstd uses zstandard, the default: best ratio at this
	// payload size with negligible encode cost.
	CompressionZstd Compression = "zstd"
	// CompressionLZ4 trades some ratio for the fastest decode path.
	CompressionLZ4 Compression = "lz4"
)

// ByName returns a built-in compression codec by its stable name.
func ByName(name string) (Compression, bool) {
	switch Compression(name) {
	case CompressionNone, CompressionZstd, CompressionLZ4:
		return Compression(name), true
	default:
		return "", false
	}
}

func compress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionZstd:
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		if _, err := enc.Write(payload); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case CompressionLZ4:
		var buf bytes.Buffer
		enc := lz4.NewWriter(&buf)
		if _, err := enc.Write(payload); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}

func decompress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		return io.ReadAll(dec)

	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}
