package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Load replaces the contents of the store with the systems in path.
//
// If path does not exist, Load returns an error wrapping ErrFileNotFound
// unless allowMissing is set, in which case it creates the parent directory
// and an empty system list at path, then loads that.
//
// The file text passes through ToXML and is parsed permissively. A document
// that still cannot be parsed yields a *ParseError. On any error the store
// is left unchanged.
func (s *Store) Load(path string, allowMissing bool) error {
	exists, err := s.fileExists(path)
	if err != nil {
		return &PathError{Op: OpRead, Path: path, Err: err}
	}

	if !exists {
		if !allowMissing {
			return fmt.Errorf("load %s: %w", path, ErrFileNotFound)
		}
		if err := s.createEmpty(path); err != nil {
			return err
		}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return &PathError{Op: OpRead, Path: path, Err: err}
	}

	records, recovered, err := unmarshalRecords(ToXML(string(data)))
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if recovered {
		s.logger.Warn("recovered malformed system list", "path", path)
	}

	s.records = records
	s.logger.Debug("loaded system list",
		"path", path,
		"systems", len(records),
	)
	return nil
}

// Lookup returns the system with the given name.
func (s *Store) Lookup(name string) (Record, bool) {
	i := s.index(name)
	if i < 0 {
		return Record{}, false
	}
	return s.records[i], true
}

// index returns the position of the named system, or -1.
func (s *Store) index(name string) int {
	for i, r := range s.records {
		if r.Equal(Record{Name: name}) {
			return i
		}
	}
	return -1
}

// fileExists reports whether path names a regular file.
// A directory at path is ErrIsDir, not a missing file.
func (s *Store) fileExists(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, ErrIsDir
	}
	return true, nil
}

// createEmpty writes an empty system list at path, creating its directory.
func (s *Store) createEmpty(path string) error {
	if err := s.ensureDir(path); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, path, []byte(emptyDocument), 0o644); err != nil {
		return &PathError{Op: OpWrite, Path: path, Err: err}
	}
	s.logger.Info("created empty system list", "path", path)
	return nil
}

// ensureDir creates the parent directory of path and any missing parents.
func (s *Store) ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return &PathError{Op: OpMkdir, Path: dir, Err: err}
	}
	return nil
}
