// Package envstore abstracts the deployment-environment key/value store that
// the selection outcome is persisted into.
//
// Deployment sequences exchange state through named string variables. The
// concrete backing differs per site: a dotenv-format variables file shared
// with the surrounding tooling, or the process environment when the caller
// re-exports variables itself. Tests use the in-memory store.
package envstore

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Store is the deployment-environment variable store boundary.
type Store interface {
	// Get returns the value of a variable and whether it is set.
	Get(name string) (string, bool)
	// Set writes a variable. Implementations persist immediately; there is
	// no batching or transaction semantics.
	Set(name, value string) error
}

// FileStore persists variables to a dotenv-format file. Every Set rewrites
// the file, which is acceptable for the handful of variables a run produces.
type FileStore struct {
	path string
	vals map[string]string
}

// OpenFileStore opens or creates the variables file at path. An existing file
// is read so that Get reflects variables written by earlier deployment steps.
// The file is written once on open to surface permission problems immediately:
// an unreachable store must fail at startup, not mid-run.
func OpenFileStore(path string) (*FileStore, error) {
	vals := map[string]string{}

	if _, err := os.Stat(path); err == nil {
		vals, err = godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading variables file %s: %w", path, err)
		}
	}

	s := &FileStore{path: path, vals: vals}
	if err := s.flush(); err != nil {
		return nil, fmt.Errorf("variables file %s is not writable: %w", path, err)
	}

	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Get implements Store.
func (s *FileStore) Get(name string) (string, bool) {
	v, ok := s.vals[name]

	return v, ok
}

// Set implements Store.
func (s *FileStore) Set(name, value string) error {
	s.vals[name] = value

	return s.flush()
}

func (s *FileStore) flush() error {
	return godotenv.Write(s.vals, s.path)
}

// ProcessStore reads and writes the environment of the current process. Only
// useful when the surrounding tooling spawns this program in its own
// environment and harvests the variables afterwards.
type ProcessStore struct{}

// Get implements Store.
func (ProcessStore) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set implements Store.
func (ProcessStore) Set(name, value string) error {
	return os.Setenv(name, value)
}

// MemoryStore is an in-memory Store for tests and for testing mode, where
// persistence side effects must be suppressed.
type MemoryStore struct {
	vals map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: map[string]string{}}
}

// Get implements Store.
func (m *MemoryStore) Get(name string) (string, bool) {
	v, ok := m.vals[name]

	return v, ok
}

// Set implements Store.
func (m *MemoryStore) Set(name, value string) error {
	m.vals[name] = value

	return nil
}

// Names returns the set variable names in stable order.
func (m *MemoryStore) Names() []string {
	names := make([]string, 0, len(m.vals))
	for name := range m.vals {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
