package feer

import "fmt"

// AccessError is the invalid-alternative-access failure: it is the
// panic payload raised when an accessor for one alternative runs while
// the other alternative is active (Value on a failure, Error on a
// success). It marks a programming error, not a domain failure, so it
// propagates as a panic; being an error value it stays recoverable and
// assertable in tests.
type AccessError struct {
	// Op is the accessor that was misused, e.g. "Value" or "Error".
	Op string
	// Active names the alternative that actually held at the time,
	// "success" or "failure". Access to a zero reference container,
	// which holds neither alternative, is reported as "uninitialized".
	Active string
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	if e.Active == "uninitialized" {
		return fmt.Sprintf("feer: %s called on an uninitialized reference container", e.Op)
	}
	return fmt.Sprintf("feer: %s called while the %s alternative is active", e.Op, e.Active)
}

func badAccess(op, active string) *AccessError {
	return &AccessError{Op: op, Active: active}
}
