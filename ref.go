package feer

// Ref is the aliasing specialization of the result container: its
// success alternative stores a non-owning handle to caller-supplied
// storage instead of an independent copy. Value returns the very
// pointer the caller passed to OkRef, so mutation through it lands in
// the original storage — also when the Ref itself was copied or passed
// by value, mirroring how a reference is orthogonal to the constness of
// whatever holds it.
//
// Lifetime is a manual contract: the container neither extends nor
// tracks the referent's life, and callers must guarantee the referent
// outlives every Ref that aliases it.
//
// Ref deliberately has no ValueOr (ownership of a returned fallback
// would be ambiguous) and no serialized form. The zero Ref is not a
// usable value; construct with OkRef or FailRef.
type Ref[T any] struct {
	target *T
	err    *Err
}

// OkRef constructs a success Ref aliasing *target. Only durable,
// addressable storage can be aliased: a nil target is a contract
// violation and panics.
func OkRef[T any](target *T) Ref[T] {
	if target == nil {
		panic("feer: OkRef requires a non-nil target")
	}
	return Ref[T]{target: target}
}

// FailRef constructs a failure Ref carrying err.
func FailRef[T any](err Err) Ref[T] {
	return Ref[T]{err: &err}
}

// IsOk reports whether the success alternative is active.
func (r Ref[T]) IsOk() bool { return r.err == nil && r.target != nil }

// IsErr reports whether the failure alternative is active.
func (r Ref[T]) IsErr() bool { return r.err != nil }

// Value returns the aliased storage. It panics with *AccessError when
// the failure alternative is active, or on the zero Ref, which holds
// neither alternative.
func (r Ref[T]) Value() *T {
	if r.err != nil {
		panic(badAccess("Value", "failure"))
	}
	if r.target == nil {
		panic(badAccess("Value", "uninitialized"))
	}
	return r.target
}

// Error returns the carried Err. It panics with *AccessError when the
// success alternative is active, or on the zero Ref.
func (r Ref[T]) Error() Err {
	if r.err == nil {
		if r.target == nil {
			panic(badAccess("Error", "uninitialized"))
		}
		panic(badAccess("Error", "success"))
	}
	return *r.err
}

// ReadRef is the read-only aliasing specialization: like Ref it holds a
// non-owning handle to caller storage, but its accessor yields the
// referent's current value and offers no mutation path. Reads go
// through the alias at call time, so changes made to the referent after
// construction remain observable.
type ReadRef[T any] struct {
	target *T
	err    *Err
}

// OkReadRef constructs a success ReadRef aliasing *target. A nil
// target is a contract violation and panics.
func OkReadRef[T any](target *T) ReadRef[T] {
	if target == nil {
		panic("feer: OkReadRef requires a non-nil target")
	}
	return ReadRef[T]{target: target}
}

// FailReadRef constructs a failure ReadRef carrying err.
func FailReadRef[T any](err Err) ReadRef[T] {
	return ReadRef[T]{err: &err}
}

// IsOk reports whether the success alternative is active.
func (r ReadRef[T]) IsOk() bool { return r.err == nil && r.target != nil }

// IsErr reports whether the failure alternative is active.
func (r ReadRef[T]) IsErr() bool { return r.err != nil }

// Value reads the referent's current value. It panics with
// *AccessError when the failure alternative is active, or on the zero
// ReadRef, which holds neither alternative.
func (r ReadRef[T]) Value() T {
	if r.err != nil {
		panic(badAccess("Value", "failure"))
	}
	if r.target == nil {
		panic(badAccess("Value", "uninitialized"))
	}
	return *r.target
}

// Error returns the carried Err. It panics with *AccessError when the
// success alternative is active, or on the zero ReadRef.
func (r ReadRef[T]) Error() Err {
	if r.err == nil {
		if r.target == nil {
			panic(badAccess("Error", "uninitialized"))
		}
		panic(badAccess("Error", "success"))
	}
	return *r.err
}
