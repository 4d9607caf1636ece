package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the catalog source cannot be read.
	ErrSourceNotFound = errors.New("source not found")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("dataset not found")
	// ErrMissingLink is matched by every *MissingLinkError.
	ErrMissingLink = errors.New("missing link")
	// ErrMalformedSource is matched by every *MalformedSourceError.
	ErrMalformedSource = errors.New("malformed source")
)

// LookupKind identifies which mapping a failed lookup went through
type LookupKind int

const (
	KindIndex LookupKind = iota
	KindName
)

func (k LookupKind) String() string {
	switch k {
	case KindIndex:
		return "INDEX"
	case KindName:
		return "NAME"
	default:
		return fmt.Sprintf("LookupKind(%d)", int(k))
	}
}

// NotFoundError reports a lookup miss. Key is the normalized key for
// index lookups and the caller's original value for name lookups.
type NotFoundError struct {
	Kind LookupKind
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no dataset with %s=%q", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingLinkError reports a record whose MAIN_LINK is empty
type MissingLinkError struct {
	Key string
}

func (e *MissingLinkError) Error() string {
	return fmt.Sprintf("no MAIN_LINK for INDEX=%q", e.Key)
}

func (e *MissingLinkError) Is(target error) bool {
	return target == ErrMissingLink
}

// MalformedSourceError reports a source that was readable but could not be parsed.
type MalformedSourceError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedSourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed source %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("malformed source %s: %v", e.Path, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

func (e *MalformedSourceError) Is(target error) bool {
	return target == ErrMalformedSource
}
