// Package store persists the latest analysis.Report of each kind as an
// indented JSON file under a data directory:
//
//	<dir>/critic_results.json
//	<dir>/topsis_results.json
//	<dir>/critic_topsis_results.json
//
// Saving a kind replaces its previous report. Writes go to a temporary file
// that is renamed into place, so readers never observe a partial document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/mcdm/analysis"
)

const (
	fileSuffix = "_results.json"
	dirPerm    = 0o755
	filePerm   = 0o644
)

var (
	// ErrNotFound indicates that no report of the requested kind was saved yet.
	ErrNotFound = errors.New("store: no saved results")

	// ErrEmptyDir indicates an empty data directory path.
	ErrEmptyDir = errors.New("store: empty data directory")
)

// Store is a file-backed report store. It is safe for concurrent use within
// one process.
type Store struct {
	dir string
	log *zap.Logger
	mu  sync.RWMutex
}

// Open returns a Store rooted at dir, creating the directory on demand.
// A nil logger is replaced by a no-op logger.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, ErrEmptyDir
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file that holds reports of kind.
func (s *Store) Path(kind analysis.Kind) string {
	return filepath.Join(s.dir, string(kind)+fileSuffix)
}

// Save writes rep as the current report of its kind.
func (s *Store) Save(rep analysis.Report) error {
	kind, err := analysis.ParseKind(string(rep.Kind))
	if err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	rep.Kind = kind
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", rep.Kind, err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(kind)
	if err = writeAtomic(path, data); err != nil {
		return fmt.Errorf("store: save %s: %w", rep.Kind, err)
	}
	s.log.Debug("saved report", zap.String("kind", string(rep.Kind)), zap.String("id", rep.ID), zap.String("path", path))

	return nil
}

// Load returns the current report of kind, or ErrNotFound.
func (s *Store) Load(kind analysis.Kind) (analysis.Report, error) {
	s.mu.RLock()
	data, err := os.ReadFile(s.Path(kind))
	s.mu.RUnlock()
	if errors.Is(err, fs.ErrNotExist) {
		return analysis.Report{}, fmt.Errorf("%w: %s", ErrNotFound, kind)
	}
	if err != nil {
		return analysis.Report{}, fmt.Errorf("store: load %s: %w", kind, err)
	}

	var rep analysis.Report
	if err = json.Unmarshal(data, &rep); err != nil {
		return analysis.Report{}, fmt.Errorf("store: decode %s: %w", kind, err)
	}

	return rep, nil
}

// Delete removes the report of kind. Deleting a missing report is not an error.
func (s *Store) Delete(kind analysis.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(kind)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: delete %s: %w", kind, err)
	}

	return nil
}

// List returns the kinds that currently have a saved report, in
// analysis.Kinds order.
func (s *Store) List() ([]analysis.Kind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []analysis.Kind
	for _, k := range analysis.Kinds {
		_, err := os.Stat(s.Path(k))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, k)
	}

	return out, nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
