package store

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned by Load when the source file does not exist
// and missing files are not allowed.
var ErrFileNotFound = errors.New("file not found")

// ErrIsDir is returned when a system list path names a directory.
var ErrIsDir = errors.New("is a directory")

// ParseError reports a system list that could not be parsed, even in
// permissive mode.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Operations reported by PathError.
const (
	OpMkdir  = "mkdir"
	OpBackup = "backup"
	OpWrite  = "write"
	OpRead   = "read"
)

// PathError reports a filesystem failure while loading or saving.
// Op is one of OpMkdir, OpBackup, OpWrite or OpRead.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
