// Package jsonstore persists the marketplace state as three JSON files in a
// data directory: orders.json, ratings.json and users.json. The files use
// the same shapes the system has always written, so existing data files and
// hand edits keep working.
//
// Durability model: a unit of work holds an advisory file lock (gofrs/flock)
// from Begin to Commit or Rollback. Begin loads the files under the lock,
// repositories mutate the in-memory state, and Commit rewrites the files
// before the lock is released. The whole read-modify-write sequence is
// serialized against every other process using the same data directory.
//
// Corruption tolerance: a missing file is an empty store; an unparsable file
// is logged at WARN and treated as empty rather than failing the operation.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	ordersFile  = "orders.json"
	ratingsFile = "ratings.json"
	usersFile   = "users.json"
	lockFile    = ".lock"
)

// Store describes a JSON data directory. It holds no open handles; each
// unit of work opens its own lock so concurrent units contend properly.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore prepares a JSON store in the given directory, creating the
// directory if needed.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &Store{
		dir:    dir,
		logger: logger.With("component", "jsonstore"),
	}, nil
}

// storeState is the in-memory image of the three files that a unit of work
// mutates between Begin and Commit.
type storeState struct {
	orders  map[string]orderDTO
	ratings ratingsDTO
	users   map[string]userDTO
}

func (s *Store) loadState() *storeState {
	state := &storeState{
		orders: make(map[string]orderDTO),
		ratings: ratingsDTO{
			Restaurants: make(map[string]restaurantRatingDTO),
			Drivers:     make(map[string]driverRatingDTO),
		},
		users: make(map[string]userDTO),
	}

	s.loadFile(ordersFile, &state.orders)
	s.loadFile(ratingsFile, &state.ratings)
	s.loadFile(usersFile, &state.users)

	// an edited ratings.json may omit either section
	if state.ratings.Restaurants == nil {
		state.ratings.Restaurants = make(map[string]restaurantRatingDTO)
	}
	if state.ratings.Drivers == nil {
		state.ratings.Drivers = make(map[string]driverRatingDTO)
	}
	if state.orders == nil {
		state.orders = make(map[string]orderDTO)
	}
	if state.users == nil {
		state.users = make(map[string]userDTO)
	}

	return state
}

// loadFile reads one store file into out. Missing and corrupt files both
// leave out as the empty store; only corruption is worth a warning.
func (s *Store) loadFile(name string, out any) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store file unreadable, treating as empty",
				"file", name, "error", err)
		}
		return
	}

	if err = json.Unmarshal(data, out); err != nil {
		s.logger.Warn("store file corrupt, treating as empty",
			"file", name, "error", err)
	}
}

func (s *Store) saveState(state *storeState) error {
	if err := s.saveFile(ordersFile, state.orders); err != nil {
		return err
	}
	if err := s.saveFile(ratingsFile, state.ratings); err != nil {
		return err
	}
	return s.saveFile(usersFile, state.users)
}

// saveFile rewrites one store file wholesale. Writing to a temp file and
// renaming keeps a crashed write from leaving a half-written file behind.
func (s *Store) saveFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}

	return nil
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, lockFile)
}
