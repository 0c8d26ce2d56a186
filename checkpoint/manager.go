package checkpoint

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// Compression is the payload codec for written checkpoints.
	Compression Compression

	// MinInterval is the minimum time between automatic checkpoints.
	// Maybe calls inside the interval are no-ops.
	MinInterval time.Duration
}

// DefaultManagerOptions are the defaults used by NewManager.
var DefaultManagerOptions = ManagerOptions{
	Compression: CompressionZstd,
	MinInterval: 30 * time.Second,
}

// Manager writes rate-limited checkpoints of a walker to a fixed path.
// Drivers call Maybe from their sampling loop as often as they like; writes
// actually happen at most once per MinInterval.
//
// A Manager is safe for use by a single walker goroutine. It never touches
// the walker beyond taking a Snapshot, and in particular never triggers a
// Slater refresh on its own.
type Manager struct {
	mu      sync.Mutex
	path    string
	opts    ManagerOptions
	limiter *rate.Limiter

	written uint64 // checkpoints actually written
}

// NewManager creates a Manager writing to path.
func NewManager(path string, optFns ...func(*ManagerOptions)) *Manager {
	opts := DefaultManagerOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = DefaultManagerOptions.MinInterval
	}
	if opts.Compression == "" {
		opts.Compression = DefaultManagerOptions.Compression
	}

	return &Manager{
		path:    path,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Every(opts.MinInterval), 1),
	}
}

// Maybe writes a checkpoint if the rate limiter allows one. Returns whether
// a checkpoint was written.
func (m *Manager) Maybe(s Snapshotter) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.limiter.Allow() {
		return false, nil
	}
	if err := SaveFile(m.path, s.Snapshot(), m.opts.Compression); err != nil {
		return false, err
	}
	m.written++
	return true, nil
}

// Force writes a checkpoint regardless of the rate limit, e.g. on shutdown.
func (m *Manager) Force(s Snapshotter) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := SaveFile(m.path, s.Snapshot(), m.opts.Compression); err != nil {
		return err
	}
	m.written++
	return nil
}

// Written returns the number of checkpoints written so far.
func (m *Manager) Written() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written
}

// Path returns the checkpoint destination path.
func (m *Manager) Path() string { return m.path }
