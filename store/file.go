package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File keeps values in a JSON object on disk. Every call goes to the disk, so
// several processes sharing a file see each other's writes.
type File struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath is the dot file in the user's home directory, or in the working
// directory when there is no home.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".snake_solo.json"
	}
	return filepath.Join(home, ".snake_solo.json")
}

func (f *File) Get(key string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return 0, false, err
	}

	v, ok := values[key]
	return v, ok, nil
}

func (f *File) Set(key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value

	return f.save(values)
}

func (f *File) load() (map[string]int, error) {
	values := make(map[string]int)

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %v", err)
	}

	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("unmarshal store %s: %v", f.path, err)
	}

	return values, nil
}

// save writes to a temporary file next to the target and renames it over, so
// a crash never leaves half a file behind.
func (f *File) save(values map[string]int) error {
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %v", err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snake_solo-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write store: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close store: %v", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace store: %v", err)
	}

	return nil
}
