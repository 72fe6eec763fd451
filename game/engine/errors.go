package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a maze failed to load
type ErrorKind int

const (
	FileUnreadable ErrorKind = iota + 1
	InvalidDimensions
	NotRectangular
	InvalidCharacter
	MissingMarker
	DuplicateMarker
)

func (k ErrorKind) String() string {
	switch k {
	case FileUnreadable:
		return "file unreadable"
	case InvalidDimensions:
		return "invalid dimensions"
	case NotRectangular:
		return "not rectangular"
	case InvalidCharacter:
		return "invalid character"
	case MissingMarker:
		return "missing marker"
	case DuplicateMarker:
		return "duplicate marker"
	}
	return "unknown"
}

// Sentinels matched by LoadError.Is, one per kind.
var (
	ErrFileUnreadable    = errors.New("maze file unreadable")
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNotRectangular    = errors.New("maze is not rectangular")
	ErrInvalidCharacter  = errors.New("invalid maze character")
	ErrMissingMarker     = errors.New("missing maze marker")
	ErrDuplicateMarker   = errors.New("duplicate maze marker")
)

var kindSentinels = map[ErrorKind]error{
	FileUnreadable:    ErrFileUnreadable,
	InvalidDimensions: ErrInvalidDimensions,
	NotRectangular:    ErrNotRectangular,
	InvalidCharacter:  ErrInvalidCharacter,
	MissingMarker:     ErrMissingMarker,
	DuplicateMarker:   ErrDuplicateMarker,
}

// LoadError describes a rejected maze. Row and Col are 1-based when set,
// zero when the failure is not tied to a location.
type LoadError struct {
	Kind   ErrorKind
	Path   string
	Row    int
	Col    int
	Marker Cell
	Detail string
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	switch {
	case e.Row > 0 && e.Col > 0:
		msg += fmt.Sprintf(" at row %d, col %d", e.Row, e.Col)
	case e.Row > 0:
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying I/O error, if any
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a LoadError against the sentinel for its kind
func (e *LoadError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// KindOf returns the kind of a load error anywhere in err's chain, or 0
func KindOf(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
