package testutil

import (
	"runtime"
	"testing"

	"github.com/feer-go/feer"
)

// MustPanicAccess runs fn and returns the *feer.AccessError it panics
// with. The test fails when fn does not panic or panics with anything
// else.
func MustPanicAccess(t *testing.T, fn func()) *feer.AccessError {
	t.Helper()
	var got *feer.AccessError
	func() {
		defer func() {
			t.Helper()
			r := recover()
			if r == nil {
				t.Fatalf("expected an access panic, function returned normally")
			}
			ae, ok := r.(*feer.AccessError)
			if !ok {
				t.Fatalf("expected *feer.AccessError panic, got %T: %v", r, r)
			}
			got = ae
		}()
		fn()
	}()
	return got
}

// MustPanic runs fn and returns whatever it panics with; fails the
// test when fn returns normally.
func MustPanic(t *testing.T, fn func()) any {
	t.Helper()
	var got any
	func() {
		defer func() {
			t.Helper()
			got = recover()
			if got == nil {
				t.Fatalf("expected a panic, function returned normally")
			}
		}()
		fn()
	}()
	return got
}

// Line reports the line number of its call site, for bracketing the
// lines an automatically captured location may fall on.
func Line() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}
