// Package apperr defines the error kinds surfaced to Orion users.
package apperr

import "errors"

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrUnknownCommand = errors.New("unknown command")
	ErrParse          = errors.New("parse error")
	ErrIndex          = errors.New("index error")
	ErrUsage          = errors.New("usage error")
	ErrLoad           = errors.New("load failure")
	ErrSave           = errors.New("save failure")
	ErrCorrupted      = errors.New("corrupted data")
)

// Error carries a user-facing message tagged with one of the kinds above.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

// New returns an error of the given kind with a user-facing message.
func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap is like New but keeps err as the cause.
func Wrap(kind error, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + " " + e.Err.Error()
	}
	return e.Msg
}

// Is matches the error kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

// CorruptedError reports a data-file line that cannot be decoded.
type CorruptedError struct {
	Line   string
	Reason string
}

func (e *CorruptedError) Error() string {
	if e.Reason != "" {
		return "Saved data is corrupted (" + e.Reason + "): " + e.Line
	}
	return "Saved data is corrupted: " + e.Line
}

func (e *CorruptedError) Is(target error) bool { return target == ErrCorrupted }

// IsUserError reports whether err stems from bad user input rather than
// from the data file or the file system.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrIndex) ||
		errors.Is(err, ErrUsage)
}
