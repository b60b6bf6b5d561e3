// Package workspace manages the per-run temporary directories that hold
// intermediate calibration artifacts.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	zerrors "github.com/AndreyAkinshin/zcalibrate/internal/errors"
)

// DefaultPrefix is prepended to every workspace directory name.
const DefaultPrefix = "zcall_"

// Manager creates and removes workspaces under a base directory.
type Manager struct {
	baseDir string
	prefix  string
}

// NewManager creates a Manager. An empty baseDir means os.TempDir() at
// acquire time; an empty prefix means DefaultPrefix.
func NewManager(baseDir, prefix string) *Manager {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Manager{baseDir: baseDir, prefix: prefix}
}

// Acquire creates a fresh, uniquely named directory and returns its path.
// The directory is readable only by the current user.
func (m *Manager) Acquire() (string, error) {
	base := m.baseDir
	if base == "" {
		base = os.TempDir()
	}

	path := filepath.Join(base, m.prefix+uuid.NewString())
	if err := os.Mkdir(path, 0o700); err != nil {
		return "", zerrors.EnvironmentWrap(err, "create temporary workspace")
	}
	return path, nil
}

// Release removes the workspace and everything in it, unless keep is set,
// in which case the directory is left untouched.
func (m *Manager) Release(path string, keep bool) error {
	if keep {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return zerrors.EnvironmentWrap(err, "remove temporary workspace")
	}
	return nil
}
