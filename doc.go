// Package feer provides a small, explicit result primitive: a container
// that holds either a success value or an error payload, used as a
// return-type convention to make fallible operations visible in APIs.
// The package exposes four container forms:
//  1. Result[T] for owned success values
//  2. Ref[T] / ReadRef[T] for non-owning aliases of caller storage
//  3. Void for operations with no success payload
//
// An error payload (Err) carries a message plus the source location of
// its construction, captured automatically via the Go runtime. The
// containers are passive carriers: they never log, wrap or aggregate.
// Accessing the inactive alternative is a contract violation and panics
// with a recoverable *AccessError rather than returning a default.
//
//	func parsePort(s string) feer.Result[int] {
//		n, err := strconv.Atoi(s)
//		if err != nil || n < 1 || n > 65535 {
//			return feer.Failf[int]("invalid port")
//		}
//		return feer.Ok(n)
//	}
//
//	r := parsePort(input)
//	if r.IsOk() {
//		listen(r.Value())
//	} else {
//		report(r.Error())
//	}
//
// Branch-complete consumption goes through Match and its siblings,
// whose shared result type parameter forces both handlers to agree at
// compile time. The design intentionally stops at the two-state
// container; propagation policy belongs to the caller.
//
// All containers are plain values with no internal synchronization:
// concurrent use follows the ordinary data-race rules for non-atomic
// values, and aliasing containers additionally inherit whatever
// discipline governs the referenced storage.
package feer
