package cosmo

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package is an *OpError, and
// errors.Is(err, ErrFoo) reports whether it has the matching Kind.
var (
	ErrInvalidArgument = errors.New("cosmo: invalid argument")
	ErrInvalidState    = errors.New("cosmo: invalid state")
	ErrConfiguration   = errors.New("cosmo: invalid configuration")
	ErrIO              = errors.New("cosmo: i/o failure")
	ErrParse           = errors.New("cosmo: malformed file")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindInvalidState    ErrorKind = "invalid_state"
	KindConfiguration   ErrorKind = "configuration"
	KindIO              ErrorKind = "io"
	KindParse           ErrorKind = "parse"
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidArgument: ErrInvalidArgument,
	KindInvalidState:    ErrInvalidState,
	KindConfiguration:   ErrConfiguration,
	KindIO:              ErrIO,
	KindParse:           ErrParse,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel for its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsKind helps callers classify errors without comparing sentinels.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func opErr(op string, kind ErrorKind, path string, err error) *OpError {
	return &OpError{Op: op, Kind: kind, Path: path, Err: err}
}
