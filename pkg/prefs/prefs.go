package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/friendsofgo/errors"
)

// Preference keys used by the dashboard.
const (
	KeyTableColumns = "users-table-columns"
	KeyTableSort    = "users-table-sort"
)

const fileName = "prefs.json"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("preference not found")

// Store persists named preferences as a single JSON file. Values are
// kept as raw JSON so each key can hold its own shape.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a Store rooted at dir. An empty dir uses the user config
// directory under an "adminboard" folder.
func New(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving user config dir")
		}
		dir = filepath.Join(base, "adminboard")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating preferences dir")
	}

	return &Store{path: filepath.Join(dir, fileName)}, nil
}

// Get decodes the value stored under key into out. Returns ErrNotFound
// when the key has never been set.
func (s *Store) Get(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	raw, ok := all[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decoding preference %q", key)
	}
	return nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding preference %q", key)
	}
	all[key] = raw

	return s.save(all)
}

// Delete removes a stored key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := all[key]; !ok {
		return nil
	}
	delete(all, key)

	return s.save(all)
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, errors.Wrap(err, "reading preferences")
	}

	all := map[string]json.RawMessage{}
	if err := json.Unmarshal(buf, &all); err != nil {
		// A corrupt file must not brick the dashboard; start over.
		return map[string]json.RawMessage{}, nil
	}
	return all, nil
}

func (s *Store) save(all map[string]json.RawMessage) error {
	buf, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding preferences")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return errors.Wrap(err, "writing preferences")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replacing preferences")
	}
	return nil
}
