// Package backup snapshots manifest files before destructive writes so an
// overwritten fel4.toml can be recovered by hand.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/fel4cfg/pkg/fileutil"
)

// DefaultRetentionCount is the number of backups retained per manifest.
const DefaultRetentionCount = 5

// timestampFormat orders backup names lexicographically by creation time.
const timestampFormat = "20060102-150405"

// ErrNoBackupsFound indicates no backups exist for the given manifest.
var ErrNoBackupsFound = errors.New("no backups found")

// Manager creates and prunes manifest backups.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets the number of backups to retain per manifest.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// withClock overrides the timestamp source for tests.
func withClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        BackupDir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BackupDir returns the root backup directory,
// $XDG_DATA_HOME/fel4cfg/backups by default.
func BackupDir() string {
	return filepath.Join(xdg.DataHome, "fel4cfg", "backups")
}

// Backup copies the manifest at path into the backup directory and prunes
// old copies beyond the retention count. It returns the backup's path.
func (m *Manager) Backup(path string) (string, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return "", errors.Wrap(err, "reading manifest for backup")
	}

	dir := m.manifestDir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	name := m.now().UTC().Format(timestampFormat) + "-" + filepath.Base(path)
	dest := filepath.Join(dir, name)
	if err := fileutil.AtomicWriteFile(dest, data, 0o644); err != nil {
		return "", errors.Wrap(err, "writing backup")
	}

	if err := m.prune(dir); err != nil {
		return "", err
	}
	return dest, nil
}

// Latest returns the path of the newest backup for the manifest at path.
func (m *Manager) Latest(path string) (string, error) {
	names, err := m.list(m.manifestDir(path))
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoBackupsFound
	}
	return filepath.Join(m.manifestDir(path), names[len(names)-1]), nil
}

// manifestDir buckets backups per manifest by a digest of its absolute
// path, so identically named manifests in different projects never collide.
func (m *Manager) manifestDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(m.rootDir, hex.EncodeToString(sum[:8]))
}

// list returns backup names in the directory sorted oldest first.
func (m *Manager) list(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing backups")
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// prune removes the oldest backups beyond the retention count.
func (m *Manager) prune(dir string) error {
	names, err := m.list(dir)
	if err != nil {
		return err
	}
	for len(names) > m.retentionCount {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			return errors.Wrap(err, "pruning old backup")
		}
		names = names[1:]
	}
	return nil
}
