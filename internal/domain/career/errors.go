package career

import (
	"errors"
	"fmt"
)

var (
	ErrCatalogUnavailable  = errors.New("career catalog unavailable")
	ErrInvalidCatalogEntry = errors.New("invalid career catalog entry")
)

// EntryError describes a malformed catalog record. Index is -1 when the
// position is not known to the reporter.
type EntryError struct {
	Index  int
	Field  string
	Reason string
}

func (e *EntryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidCatalogEntry, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: entry %d: %s: %s", ErrInvalidCatalogEntry, e.Index, e.Field, e.Reason)
}

func (e *EntryError) Is(target error) bool {
	return target == ErrInvalidCatalogEntry
}

// AtIndex returns a copy of err positioned at index when err is an
// *EntryError, and err unchanged otherwise.
func AtIndex(err error, index int) error {
	var ee *EntryError
	if errors.As(err, &ee) {
		cp := *ee
		cp.Index = index
		return &cp
	}
	return err
}

func NewEntryError(index int, field, reason string) error {
	return &EntryError{Index: index, Field: field, Reason: reason}
}
