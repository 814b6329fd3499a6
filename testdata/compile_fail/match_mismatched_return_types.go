// This file must fail to type-check: Match's handlers disagree on the
// result type (int vs bool), so no single type argument satisfies R.
//
// Expected compiler error (shape):
//
//	type func(feer.Err) bool of func(feer.Err) bool {…} does not match
//	inferred type func(feer.Err) int for func(feer.Err) R
package main

import "github.com/feer-go/feer"

func main() {
	value := feer.Ok(7)

	out := feer.Match(value,
		func(v int) int { return v },
		func(feer.Err) bool { return false },
	)

	_ = out
}
