package store

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies store failures.
type Kind int

const (
	// KindNotFound means an operation that needed a row found none.
	KindNotFound Kind = iota + 1
	// KindStore covers everything else: connectivity, schema, locking.
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is returned by every DatabasePool operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap classifies err for op. Driver not-found sentinels map to
// KindNotFound.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := KindStore
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		kind = KindNotFound
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsNotFound reports whether err is a store not-found error.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

// IsStoreError reports whether err is a store failure other than
// not-found.
func IsStoreError(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindStore
}
