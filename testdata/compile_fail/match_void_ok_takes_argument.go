// This file must fail to type-check: MatchVoid's success handler takes
// no argument, because the void container carries no payload.
//
// Expected compiler error (shape):
//
//	type func(int) int of func(int) int {…} does not match
//	inferred type func() int for func() R
package main

import "github.com/feer-go/feer"

func main() {
	var value feer.Void

	out := feer.MatchVoid(value,
		func(int) int { return 1 },
		func(feer.Err) int { return 0 },
	)

	_ = out
}
