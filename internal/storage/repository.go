package storage

import (
	"context"
	"errors"
	"fmt"
)

var ErrClosed = errors.New("storage: store is closed")

// Gateway reads and rewrites the whole persisted task file. Implementations
// create whatever backing file or directory they need on first use.
type Gateway interface {
	LoadLines(ctx context.Context) ([]string, error)
	SaveLines(ctx context.Context, lines []string) error
	Close() error
}

type Op string

const (
	OpLoad Op = "load"
	OpSave Op = "save"
)

// Warning is a non-fatal persistence failure. The session keeps working in
// memory when one occurs.
type Warning struct {
	Op  Op
	Err error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("storage: %s: %v", w.Op, w.Err)
}

func (w *Warning) Unwrap() error { return w.Err }

// Message is the text shown to the user for the warning.
func (w *Warning) Message() string {
	switch w.Op {
	case OpLoad:
		return "Warning: could not load data (starting with empty list)."
	default:
		return "Warning: could not save data."
	}
}

type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindFile, KindSQLite:
		return true
	default:
		return false
	}
}

// Open returns the gateway for kind backed by path.
func Open(kind Kind, path string) (Gateway, error) {
	switch kind {
	case KindFile, "":
		return NewFileStore(path), nil
	case KindSQLite:
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("storage: unknown store kind %q", kind)
	}
}
