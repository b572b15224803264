package store

import (
	"slices"

	"github.com/spf13/afero"
)

// Upsert stores r under its name. An existing system with that name is
// replaced in place; otherwise r is appended. It reports whether a system
// was replaced.
func (s *Store) Upsert(r Record) bool {
	if i := s.index(r.Name); i >= 0 {
		s.records[i] = r
		return true
	}
	s.records = append(s.records, r)
	return false
}

// Remove deletes the named system. Removing a name that is not present is
// a no-op. It reports whether a system was removed.
func (s *Store) Remove(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

// Save writes the store to path.
//
// The parent directory is created if needed. An existing file at path is
// first renamed to BackupPath(path), overwriting any earlier backup. The
// rendered document passes through FromXML before it is written.
func (s *Store) Save(path string) error {
	if err := s.ensureDir(path); err != nil {
		return err
	}

	if err := s.backup(path); err != nil {
		return err
	}

	text, err := marshalRecords(s.records)
	if err != nil {
		return &PathError{Op: OpWrite, Path: path, Err: err}
	}

	if err := afero.WriteFile(s.fs, path, []byte(FromXML(text)), 0o644); err != nil {
		return &PathError{Op: OpWrite, Path: path, Err: err}
	}

	s.logger.Debug("saved system list",
		"path", path,
		"systems", len(s.records),
	)
	return nil
}

// backup moves an existing file at path to its BAK sibling.
func (s *Store) backup(path string) error {
	exists, err := s.fileExists(path)
	if err != nil {
		return &PathError{Op: OpBackup, Path: path, Err: err}
	}
	if !exists {
		return nil
	}

	bak := BackupPath(path)
	if err := s.fs.Rename(path, bak); err != nil {
		return &PathError{Op: OpBackup, Path: path, Err: err}
	}
	s.logger.Info("backed up system list", "path", path, "backup", bak)
	return nil
}
