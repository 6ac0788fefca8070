package imagepkg

import (
	"errors"
	"fmt"
)

// ErrorKind tells which pipeline stage produced an error.
type ErrorKind string

const (
	KindFetch  ErrorKind = "fetch"
	KindDecode ErrorKind = "decode"
	KindFont   ErrorKind = "font"
	KindEncode ErrorKind = "encode"
)

// OpError wraps an underlying error with the failing operation and its kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: file or URL involved
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" %s", e.Path)
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

// IsKind reports whether err is an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
