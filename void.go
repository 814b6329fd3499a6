package feer

import "fmt"

// Void is the no-payload specialization: an operation either succeeded,
// with nothing to return, or failed with an Err. The zero Void is a
// success, so default construction means "ok" exactly as for the other
// containers' zero values.
//
// The failure payload is stored by value next to an explicit
// discriminant rather than behind a pointer: a struct whose only field
// is a nil pointer trips a codec edge where the success state
// serializes as null instead of going through MarshalJSON.
type Void struct {
	err    Err
	failed bool
}

// OkVoid returns a success Void. It exists so functions returning Void
// can write an explicit affirmative return, symmetric with FailVoid.
func OkVoid() Void {
	return Void{}
}

// FailVoid constructs a failure Void carrying err.
func FailVoid(err Err) Void {
	return Void{err: err, failed: true}
}

// FailVoidf constructs a failure Void whose Err message is
// fmt-formatted and whose location is the call site.
func FailVoidf(format string, args ...any) Void {
	e := Err{message: fmt.Sprintf(format, args...), where: locate(2)}
	return Void{err: e, failed: true}
}

// IsOk reports whether the success alternative is active.
func (v Void) IsOk() bool { return !v.failed }

// IsErr reports whether the failure alternative is active.
func (v Void) IsErr() bool { return v.failed }

// Error returns the carried Err. It panics with *AccessError when the
// success alternative is active.
func (v Void) Error() Err {
	if !v.failed {
		panic(badAccess("Error", "success"))
	}
	return v.err
}

// Err unpacks the Void into Go's conventional error form: nil on
// success, the carried Err otherwise.
func (v Void) Err() error {
	if !v.failed {
		return nil
	}
	return v.err
}
