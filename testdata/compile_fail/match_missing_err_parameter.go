// This file must fail to type-check: the failure handler must accept
// the Err payload; a no-argument function is not a valid error branch.
//
// Expected compiler error (shape):
//
//	type func() int of func() int {…} does not match
//	inferred type func(feer.Err) int for func(feer.Err) R
package main

import "github.com/feer-go/feer"

func main() {
	value := feer.Fail[int](feer.NewErr("boom"))

	out := feer.Match(value,
		func(v int) int { return v },
		func() int { return -1 },
	)

	_ = out
}
