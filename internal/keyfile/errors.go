package keyfile

import (
	"errors"
	"fmt"
	"io/fs"
)

type ErrorKind int

const (
	// NotFound means nothing exists at the requested path.
	NotFound ErrorKind = iota + 1
	// OtherFailure covers every other fault: permissions, directories,
	// read errors and content that is not UTF-8 text.
	OtherFailure
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case OtherFailure:
		return "OtherFailure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by Encoder and Decoder. Path is empty for failures
// that are not tied to a file.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == NotFound {
		return fmt.Sprintf("file not found at %s", e.Path)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFound keyfile error.
func IsNotFound(err error) bool {
	var kerr *Error
	return errors.As(err, &kerr) && kerr.Kind == NotFound
}

func classify(path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: NotFound, Path: path, Err: err}
	}
	return &Error{Kind: OtherFailure, Path: path, Err: err}
}
