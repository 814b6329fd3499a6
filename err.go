package feer

import "fmt"

// Err is the failure alternative carried by the containers in this
// package: a human-readable message plus the source location where the
// payload was constructed. Both are fixed at construction time; the
// type exposes only read access afterwards.
//
// Err implements the error interface so a failure can cross ordinary
// Go error-returning boundaries (see Result.Get) without translation.
type Err struct {
	message string
	where   Location
}

// NewErr constructs an Err whose location is the call site.
func NewErr(message string) Err {
	return Err{message: message, where: locate(2)}
}

// NewErrf constructs an Err with a fmt-formatted message; the location
// is the call site.
func NewErrf(format string, args ...any) Err {
	return Err{message: fmt.Sprintf(format, args...), where: locate(2)}
}

// NewErrAt constructs an Err attributed to an explicit location,
// typically one captured earlier with Here. A zero location is replaced
// by the call site so the payload never reports an empty origin.
func NewErrAt(message string, where Location) Err {
	if where.IsZero() {
		where = locate(2)
	}
	return Err{message: message, where: where}
}

// Message returns the error message.
func (e Err) Message() string { return e.message }

// Where returns the construction-site location.
func (e Err) Where() Location { return e.where }

// Error implements the error interface; it returns the message alone,
// leaving location formatting to the caller.
func (e Err) Error() string { return e.message }
