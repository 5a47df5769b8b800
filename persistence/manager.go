package persistence

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/ripsgo"
	"github.com/hupe1980/ripsgo/resource"
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithCompression sets the compression algorithm for saved snapshots.
// The default stores payloads uncompressed.
func WithCompression(compression CompressionType) ManagerOption {
	return func(m *Manager) {
		m.compression = compression
	}
}

// WithResourceController attaches a resource controller whose IO limit
// throttles snapshot reads and writes.
func WithResourceController(c *resource.Controller) ManagerOption {
	return func(m *Manager) {
		m.controller = c
	}
}

// WithLogger configures structured logging for snapshot operations.
// Pass nil to disable logging (default).
func WithLogger(logger *ripsgo.Logger) ManagerOption {
	return func(m *Manager) {
		if logger == nil {
			logger = ripsgo.NoopLogger()
		}
		m.logger = logger
	}
}

// Manager saves and loads barcode snapshots on the filesystem.
//
// Saves are atomic: the snapshot is written to a temporary file in the
// target directory and renamed into place, so readers never observe a
// partially written file.
type Manager struct {
	compression CompressionType
	controller  *resource.Controller
	logger      *ripsgo.Logger
}

// NewManager creates a new snapshot manager.
func NewManager(optFns ...ManagerOption) *Manager {
	m := &Manager{
		compression: CompressionNone,
		logger:      ripsgo.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(m)
	}
	return m
}

// Save writes a barcode snapshot to path.
func (m *Manager) Save(ctx context.Context, path string, barcode *ripsgo.Barcode) error {
	var buf bytes.Buffer
	if err := WriteBarcode(&buf, barcode, m.compression); err != nil {
		m.logger.LogSnapshot(ctx, path, err)
		return err
	}

	if err := m.controller.AcquireIO(ctx, buf.Len()); err != nil {
		m.logger.LogSnapshot(ctx, path, err)
		return err
	}

	err := writeFileAtomic(path, buf.Bytes())
	m.logger.LogSnapshot(ctx, path, err)
	return err
}

// Load reads a barcode snapshot from path.
func (m *Manager) Load(ctx context.Context, path string) (*ripsgo.Barcode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if err := m.controller.AcquireIO(ctx, len(data)); err != nil {
		return nil, err
	}

	return ReadBarcode(bytes.NewReader(data))
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename snapshot: %w", err)
	}

	return nil
}
