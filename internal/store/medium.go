// Package store provides durable key-addressed persistence for tasks,
// settings, statistics, and completion logs, plus the incremental
// aggregation derived from them. One JSON document lives under each fixed
// key; every operation is a whole-document read-modify-write.
package store

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Storage keys. One JSON document is persisted per key.
const (
	KeyTasks      = "tasks"
	KeySettings   = "settings"
	KeyStatistics = "statistics"
	KeyLogs       = "completion_logs"
)

// AllKeys returns every storage key, in a stable order.
func AllKeys() []string {
	return []string{KeyTasks, KeySettings, KeyStatistics, KeyLogs}
}

// Medium is the key-value persistence the store runs on. Read reports
// presence separately from failure so an absent document is not an error.
type Medium interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
	Delete(key string) error
	Size(key string) int64
}

// FileMedium persists each key as {dir}/{key}.json on an afero filesystem.
// Production uses the OS filesystem; tests run on afero.NewMemMapFs.
type FileMedium struct {
	fs  afero.Fs
	dir string
}

// NewFileMedium creates a FileMedium rooted at dir, creating it if needed.
func NewFileMedium(fs afero.Fs, dir string) (*FileMedium, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileMedium{fs: fs, dir: dir}, nil
}

// path maps a storage key to its backing file.
func (m *FileMedium) path(key string) string {
	return filepath.Join(m.dir, key+".json")
}

// Read returns the document under key, with ok=false when none exists.
func (m *FileMedium) Read(key string) ([]byte, bool, error) {
	data, err := afero.ReadFile(m.fs, m.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Write replaces the document under key.
func (m *FileMedium) Write(key string, data []byte) error {
	return afero.WriteFile(m.fs, m.path(key), data, 0644)
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (m *FileMedium) Delete(key string) error {
	err := m.fs.Remove(m.path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Size returns the serialized byte size of the document under key, 0 when
// absent.
func (m *FileMedium) Size(key string) int64 {
	info, err := m.fs.Stat(m.path(key))
	if err != nil {
		return 0
	}
	return info.Size()
}
