package store

import (
	"iter"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Store holds the ordered systems of one system list file.
// Order is document order; it determines serialization order and is kept
// when a record is replaced in place.
//
// Store is not safe for concurrent use.
type Store struct {
	fs      afero.Fs
	logger  *slog.Logger
	records []Record
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty store backed by fs.
// A nil fs means the operating system filesystem.
func New(fs afero.Fs, opts ...Option) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Store{
		fs:     fs,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of systems in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// All iterates over the systems in order, yielding position and record.
func (s *Store) All() iter.Seq2[int, Record] {
	return slices.All(s.records)
}

// Records returns a copy of the systems in order.
func (s *Store) Records() []Record {
	return slices.Clone(s.records)
}

// BackupPath returns the sibling path Save moves an existing file to:
// "BAK" is inserted before the extension, so systems.xml becomes
// systemsBAK.xml. A leading dot does not start an extension.
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	if strings.TrimLeft(base, ".") == strings.TrimLeft(ext, ".") {
		ext = ""
	}
	return strings.TrimSuffix(path, ext) + "BAK" + ext
}
