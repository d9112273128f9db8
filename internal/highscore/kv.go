package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// MemoryKV is an in-process KV, used when no database is available.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Raise implements KV.
func (m *MemoryKV) Raise(key string, score int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		if cur := Parse(v); cur >= score {
			return cur, nil
		}
	}
	m.values[key] = Format(score)
	return score, nil
}

// fileLocks serializes FileKV instances that share a path.
var fileLocks sync.Map // cleaned path -> *sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := fileLocks.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// FileKV keeps values in a flat YAML mapping on disk. Every write replaces
// the file. FileKVs on the same path share one lock.
type FileKV struct {
	mu   *sync.Mutex
	path string
}

// NewFileKV returns a store backed by path. The file is created on first write.
func NewFileKV(path string) *FileKV {
	return &FileKV{mu: lockFor(path), path: path}
}

// Get implements KV.
func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set implements KV.
func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future write.
		values = make(map[string]string)
	}
	values[key] = value
	return f.write(values)
}

// Raise implements KV.
func (f *FileKV) Raise(key string, score int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		values = make(map[string]string)
	}
	if v, ok := values[key]; ok {
		if cur := Parse(v); cur >= score {
			return cur, nil
		}
	}
	values[key] = Format(score)
	if err := f.write(values); err != nil {
		return 0, err
	}
	return score, nil
}

// write replaces the file through a rename so readers never see a partial file.
func (f *FileKV) write(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode %s: %w", f.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", f.path, err)
	}
	return nil
}

func (f *FileKV) read() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("highscore: cannot parse %s: %w", f.path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}
