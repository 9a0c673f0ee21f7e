package persistence

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileStore saves YAML documents under a base directory
type FileStore struct {
	mu       sync.Mutex
	basePath string
}

// NewFileStore creates a store rooted at basePath; the directory is created on first save
func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

// FilePath returns the path for a named document
func (f *FileStore) FilePath(name string) string {
	return filepath.Join(f.basePath, name+".yaml")
}

// Exists checks if a document exists
func (f *FileStore) Exists(name string) bool {
	_, err := os.Stat(f.FilePath(name))
	return err == nil
}

// Save writes v to disk, replacing the previous document atomically
func (f *FileStore) Save(name string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return errors.Wrapf(err, "create %s", f.basePath)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}

	path := f.FilePath(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, path), "replace %s", path)
}

// Load reads a document into v
// A missing document leaves v untouched and reports ok=false without error
func (f *FileStore) Load(name string, v any) (ok bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.FilePath(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "read %s", name)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "decode %s", name)
	}
	return true, nil
}
