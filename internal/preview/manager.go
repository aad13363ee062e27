package preview

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/mgsouza/driveqr/internal/utils/errs"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// URLPrefix is the path under which acquired previews are served.
const URLPrefix = "/previews/"

// Manager owns the locally-scoped preview images created for submitted
// files. Every handle created by Acquire is invalidated exactly once, by
// Release or ReleaseAll; releasing an unknown or already-released id is a
// no-op.
type Manager struct {
	fs      afero.Fs
	baseDir string
	handles map[string]string
	mu      sync.Mutex
}

func CreateManager(fs afero.Fs, baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = "./previews"
	}
	if err := fs.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create preview dir: %w", err)
	}
	return &Manager{
		fs:      fs,
		baseDir: baseDir,
		handles: make(map[string]string),
	}, nil
}

// Acquire stores the source image bytes for itemID and returns the URL path
// the preview is reachable at. A second Acquire for the same id is refused
// rather than silently replacing the existing handle.
func (m *Manager) Acquire(itemID string, data []byte) (string, error) {
	const funcName = "preview.Manager.Acquire"

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.handles[itemID]; exists {
		logger.Warn("preview already acquired",
			zap.String("function", funcName),
			zap.String("item_id", itemID),
		)
		return "", errs.ErrPreviewExists
	}

	path := filepath.Join(m.baseDir, itemID)
	if err := afero.WriteFile(m.fs, path, data, 0o644); err != nil {
		logger.Error("failed to write preview file",
			zap.String("function", funcName),
			zap.String("item_id", itemID),
			zap.String("path", path),
			zap.Error(err),
		)
		return "", fmt.Errorf("write preview: %w", err)
	}

	m.handles[itemID] = path

	logger.Debug("preview acquired",
		zap.String("function", funcName),
		zap.String("item_id", itemID),
		zap.Int("size_bytes", len(data)),
	)

	return URLPrefix + itemID, nil
}

// Open returns a reader over the stored preview for itemID.
func (m *Manager) Open(itemID string) (io.ReadCloser, error) {
	m.mu.Lock()
	path, exists := m.handles[itemID]
	m.mu.Unlock()

	if !exists {
		return nil, errs.ErrPreviewNotFound
	}

	file, err := m.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open preview: %w", err)
	}
	return file, nil
}

// Release invalidates the handle for itemID. Unknown ids and repeated
// releases are no-ops.
func (m *Manager) Release(itemID string) {
	const funcName = "preview.Manager.Release"

	m.mu.Lock()
	defer m.mu.Unlock()

	path, exists := m.handles[itemID]
	if !exists {
		return
	}

	delete(m.handles, itemID)
	if err := m.fs.Remove(path); err != nil {
		logger.Warn("failed to remove preview file",
			zap.String("function", funcName),
			zap.String("item_id", itemID),
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// ReleaseAll invalidates every tracked handle.
func (m *Manager) ReleaseAll() {
	const funcName = "preview.Manager.ReleaseAll"

	m.mu.Lock()
	defer m.mu.Unlock()

	for itemID, path := range m.handles {
		if err := m.fs.Remove(path); err != nil {
			logger.Warn("failed to remove preview file",
				zap.String("function", funcName),
				zap.String("item_id", itemID),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}

	released := len(m.handles)
	m.handles = make(map[string]string)

	logger.Info("all previews released",
		zap.String("function", funcName),
		zap.Int("released", released),
	)
}

// ActiveCount reports how many handles are currently tracked.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}
