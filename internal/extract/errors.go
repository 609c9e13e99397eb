package extract

import "fmt"

type Kind int

const (
	KindInvalidInstallDirectory Kind = iota + 1
	KindLogFileNotFound
	KindIO
	KindURLNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInstallDirectory:
		return "InvalidInstallDirectory"
	case KindLogFileNotFound:
		return "LogFileNotFound"
	case KindIO:
		return "IoError"
	case KindURLNotFound:
		return "UrlNotFound"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Extract for every failure. Path is the file or
// directory under examination when it happened.
type Error struct {
	Kind   Kind
	Path   string
	Detail string
	Err    error
}

var (
	ErrInvalidInstallDirectory = &Error{Kind: KindInvalidInstallDirectory}
	ErrLogFileNotFound         = &Error{Kind: KindLogFileNotFound}
	ErrIO                      = &Error{Kind: KindIO}
	ErrURLNotFound             = &Error{Kind: KindURLNotFound}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the package-level sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, path, detail string, err error) *Error {
	return &Error{Kind: kind, Path: path, Detail: detail, Err: err}
}
