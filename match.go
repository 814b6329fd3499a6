package feer

// Match dispatches exhaustively over r's state: onOK receives the
// success value when the success alternative is active, onErr receives
// the Err otherwise. Exactly one handler runs per call, and its return
// value becomes Match's return value.
//
// The handlers are free Go functions rather than methods because the
// shared result type parameter R is what makes mismatched branch types
// a compile error: there is no R unifying func(T) int with
// func(Err) bool.
func Match[T, R any](r Result[T], onOK func(T) R, onErr func(Err) R) R {
	if r.err != nil {
		return onErr(*r.err)
	}
	return onOK(r.value)
}

// MatchRef dispatches over an aliasing Ref; onOK receives the aliased
// storage itself, so mutation inside the handler is visible at the
// original location.
func MatchRef[T, R any](r Ref[T], onOK func(*T) R, onErr func(Err) R) R {
	if r.err != nil {
		return onErr(*r.err)
	}
	return onOK(r.Value())
}

// MatchReadRef dispatches over a read-only ReadRef; onOK receives the
// referent's current value.
func MatchReadRef[T, R any](r ReadRef[T], onOK func(T) R, onErr func(Err) R) R {
	if r.err != nil {
		return onErr(*r.err)
	}
	return onOK(r.Value())
}

// MatchVoid dispatches over a Void; onOK takes no argument because
// there is no success payload.
func MatchVoid[R any](v Void, onOK func() R, onErr func(Err) R) R {
	if v.failed {
		return onErr(v.err)
	}
	return onOK()
}
