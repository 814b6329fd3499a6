package feer

import "fmt"

// Result is a two-alternative container holding either a success value
// of type T or an Err. Exactly one alternative is active at all times;
// which one is decided at construction and changes only by assigning a
// whole new Result. The zero Result is a success holding T's zero
// value, making Result usable as a struct field or map value without
// explicit initialization.
//
// T must not be Err (or *Err): the success and failure alternatives
// would become indistinguishable at call sites. Go generics cannot
// exclude a type, so the constraint is enforced where a Result is
// constructed.
type Result[T any] struct {
	value T
	err   *Err
}

// Ok constructs a success Result holding value.
func Ok[T any](value T) Result[T] {
	rejectErrPayload(value)
	return Result[T]{value: value}
}

// Fail constructs a failure Result carrying err.
func Fail[T any](err Err) Result[T] {
	var zero T
	rejectErrPayload(zero)
	return Result[T]{err: &err}
}

// Failf constructs a failure Result whose Err message is fmt-formatted
// and whose location is the call site.
func Failf[T any](format string, args ...any) Result[T] {
	var zero T
	rejectErrPayload(zero)
	e := Err{message: fmt.Sprintf(format, args...), where: locate(2)}
	return Result[T]{err: &e}
}

// IsOk reports whether the success alternative is active.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the failure alternative is active.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the success value. It panics with *AccessError when
// the failure alternative is active. Values copy on access, so calling
// Value repeatedly is defined and re-reads the stored value.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic(badAccess("Value", "failure"))
	}
	return r.value
}

// Error returns the carried Err. It panics with *AccessError when the
// success alternative is active.
func (r Result[T]) Error() Err {
	if r.err == nil {
		panic(badAccess("Error", "success"))
	}
	return *r.err
}

// ValueOr returns the success value, or fallback when the failure
// alternative is active.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Get unpacks the Result into Go's conventional two-value form: the
// success value and a nil error, or T's zero value and the Err.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, *r.err
	}
	return r.value, nil
}

// rejectErrPayload enforces the T != Err constraint at the
// construction boundary.
func rejectErrPayload(value any) {
	switch value.(type) {
	case Err, *Err:
		panic("feer: Result success type must not be feer.Err")
	}
}
