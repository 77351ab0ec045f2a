package mocks

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/emojigen/pkg/ports"
)

// FileSystem is an in-memory mock implementation of ports.FileSystem.
type FileSystem struct {
	Files map[string][]byte
	Dirs  map[string]bool
}

// NewFileSystem creates an empty in-memory filesystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	data, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return data, nil
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	m.Files[path] = data
	return nil
}

func (m *FileSystem) ReadDir(path string) ([]string, error) {
	if !m.Dirs[path] {
		return nil, fmt.Errorf("directory not found: %s", path)
	}
	var names []string
	prefix := path + string(filepath.Separator)
	for p := range m.Files {
		if strings.HasPrefix(p, prefix) && !strings.Contains(strings.TrimPrefix(p, prefix), string(filepath.Separator)) {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *FileSystem) MkdirAll(path string) error {
	m.Dirs[path] = true
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.Dirs[path] {
		return true, nil
	}
	_, ok := m.Files[path]
	return ok, nil
}

func (m *FileSystem) Remove(path string) error {
	delete(m.Files, path)
	delete(m.Dirs, path)
	return nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
