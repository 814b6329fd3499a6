package feer

import (
	"fmt"
	"runtime"
)

// Location identifies a source position captured at runtime: file path,
// line number and the fully qualified enclosing function. The Go
// runtime exposes no column information, so none is recorded.
type Location struct {
	File     string
	Line     int
	Function string
}

// Here returns the location of its own call site. Pass the result to
// NewErrAt to attribute an error to a place other than where it is
// constructed.
func Here() Location {
	return locate(2)
}

// IsZero reports whether l carries no position at all.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Function == ""
}

// String renders the location as "file:line (function)"; the function
// part is omitted when unknown.
func (l Location) String() string {
	if l.Function == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Function)
}

// locate captures the frame 'skip' levels above locate itself:
// skip 1 is locate's caller, skip 2 that caller's caller.
func locate(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}
