// Package storage provides file system operations for .atelier/ directories.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atelierhq/atelier/internal/codec"
	"github.com/atelierhq/atelier/internal/store"
)

const (
	// atelierDir is the name of the data directory.
	atelierDir = ".atelier"
	// artworksFile holds the persisted artwork collection.
	artworksFile = "artworks.json"
	// requestsFile holds the persisted request collection.
	requestsFile = "requests.json"
)

// Storage provides access to an .atelier/ directory.
type Storage struct {
	root string // path to directory containing .atelier/
}

// Open returns a Storage for the given directory.
// Returns an error if .atelier/ does not exist.
func Open(dir string) (*Storage, error) {
	path := filepath.Join(dir, atelierDir)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".atelier/ directory not found in %s", dir)
		}
		return nil, fmt.Errorf("failed to access .atelier/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".atelier is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates an .atelier/ directory.
// Returns an error if .atelier/ already exists.
func Init(dir string) (*Storage, error) {
	path := filepath.Join(dir, atelierDir)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf(".atelier/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .atelier/: %w", err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .atelier/: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .atelier/.
func (s *Storage) Root() string {
	return s.root
}

// ArtworksPath returns the path of the persisted artwork collection.
func (s *Storage) ArtworksPath() string {
	return filepath.Join(s.root, atelierDir, artworksFile)
}

// RequestsPath returns the path of the persisted request collection.
func (s *Storage) RequestsPath() string {
	return filepath.Join(s.root, atelierDir, requestsFile)
}

// SaveSnapshot exports both collections through the codec and writes them
// to the data directory. Best effort, like the codec itself.
func (s *Storage) SaveSnapshot(c codec.Codec, st *store.Store) {
	c.SaveToFile(c.ExportArtworks(st.AllArtworks()), s.ArtworksPath())
	c.SaveToFile(c.ExportRequests(st.AllRequests()), s.RequestsPath())
}

// LoadSnapshot reads any persisted collections and installs them into the
// store via bulk replace. Missing or corrupt files degrade to empty
// collections; the collection files are replaced independently, and a file
// that is absent altogether leaves that collection untouched.
func (s *Storage) LoadSnapshot(c codec.Codec, st *store.Store) {
	if text, ok := c.LoadFromFile(s.ArtworksPath()); ok {
		st.SetAllArtworks(c.ImportArtworks(text))
	}
	if text, ok := c.LoadFromFile(s.RequestsPath()); ok {
		st.SetAllRequests(c.ImportRequests(text))
	}
}
