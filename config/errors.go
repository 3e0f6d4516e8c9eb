package config

import (
	"errors"

	"github.com/0xalexb/tanu-cfg/config/document"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// NotLoaded is reported by getters called before a successful Load.
	NotLoaded ErrorKind = iota + 1
	// FileNotFound is reported when the resolved file path does not exist.
	FileNotFound
	// ParseFailed is reported when the file cannot be read or parsed.
	ParseFailed
	// KeyNotFound is reported when a key has no leaf in the flattened view.
	KeyNotFound
	// TypeMismatch is reported when a leaf is not of the requested kind.
	TypeMismatch
	// RootDirectoryUnset is reported when no configuration root directory is known.
	RootDirectoryUnset
)

// Sentinels matching each ErrorKind with errors.Is.
var (
	ErrNotLoaded          = errors.New("configuration is not loaded")
	ErrFileNotFound       = errors.New("file not found")
	ErrParseFailed        = errors.New("loading/parsing failed")
	ErrKeyNotFound        = errors.New("key not found")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrRootDirectoryUnset = errors.New(RootDirEnvVar + " is not set")
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case NotLoaded:
		return "NotLoaded"
	case FileNotFound:
		return "FileNotFound"
	case ParseFailed:
		return "ParseFailed"
	case KeyNotFound:
		return "KeyNotFound"
	case TypeMismatch:
		return "TypeMismatch"
	case RootDirectoryUnset:
		return "RootDirectoryUnset"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NotLoaded:
		return ErrNotLoaded
	case FileNotFound:
		return ErrFileNotFound
	case ParseFailed:
		return ErrParseFailed
	case KeyNotFound:
		return ErrKeyNotFound
	case TypeMismatch:
		return ErrTypeMismatch
	case RootDirectoryUnset:
		return ErrRootDirectoryUnset
	default:
		return nil
	}
}

// Error is the only error type returned by Config and Location.
//
// Key is set for KeyNotFound and TypeMismatch, Path for FileNotFound and
// ParseFailed, Expected for TypeMismatch. The underlying cause of a
// ParseFailed or RootDirectoryUnset error is available through errors.Unwrap
// but is not part of the message.
type Error struct {
	Kind     ErrorKind
	Key      string
	Path     string
	Expected document.Kind
	cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return e.Path + " does not exist"
	case ParseFailed:
		return e.Path + ": " + ErrParseFailed.Error()
	case KeyNotFound:
		return e.Key + " is not found"
	case TypeMismatch:
		return e.Key + "'s value is not " + e.Expected.String()
	case NotLoaded, RootDirectoryUnset:
		return e.Kind.sentinel().Error()
	default:
		return "configuration error"
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()

	return sentinel != nil && target == sentinel
}

// KindOf returns the ErrorKind carried by err, or zero if err is not an *Error.
func KindOf(err error) ErrorKind {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}

	return 0
}

func errNotLoaded() *Error {
	return &Error{Kind: NotLoaded}
}

func errFileNotFound(path string) *Error {
	return &Error{Kind: FileNotFound, Path: path}
}

func errParseFailed(path string, cause error) *Error {
	return &Error{Kind: ParseFailed, Path: path, cause: cause}
}

func errKeyNotFound(key string) *Error {
	return &Error{Kind: KeyNotFound, Key: key}
}

func errTypeMismatch(key string, expected document.Kind) *Error {
	return &Error{Kind: TypeMismatch, Key: key, Expected: expected}
}

func errRootDirectoryUnset(cause error) *Error {
	return &Error{Kind: RootDirectoryUnset, cause: cause}
}
