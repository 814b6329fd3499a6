package feer_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feer-go/feer"
	"github.com/feer-go/feer/internal/testutil"
)

func parsePort(s string) feer.Result[int] {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return feer.Failf[int]("invalid port")
	}
	return feer.Ok(n)
}

func TestResult_OkState(t *testing.T) {
	r := feer.Ok(42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Value())
}

func TestResult_ErrState(t *testing.T) {
	r := feer.Fail[int](feer.NewErr("boom"))

	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())
	assert.Equal(t, "boom", r.Error().Message())
	assert.False(t, r.Error().Where().IsZero())
}

func TestResult_WrongAlternativeAccessPanics(t *testing.T) {
	okResult := feer.Ok(7)
	errResult := feer.Fail[int](feer.NewErr("bad"))

	t.Run("Error on success", func(t *testing.T) {
		ae := testutil.MustPanicAccess(t, func() { _ = okResult.Error() })
		assert.Equal(t, "Error", ae.Op)
		assert.Equal(t, "success", ae.Active)
		assert.Contains(t, ae.Error(), "Error called while the success alternative is active")
	})

	t.Run("Value on failure", func(t *testing.T) {
		ae := testutil.MustPanicAccess(t, func() { _ = errResult.Value() })
		assert.Equal(t, "Value", ae.Op)
		assert.Equal(t, "failure", ae.Active)
	})
}

func TestResult_ConditionalUse(t *testing.T) {
	okPath := 0
	if r := parsePort("123"); r.IsOk() {
		okPath = r.Value()
	}
	require.Equal(t, 123, okPath)

	errPath := 0
	if r := parsePort("not-a-port"); r.IsOk() {
		errPath = 1
	}
	require.Equal(t, 0, errPath)
}

func TestResult_ValueOr(t *testing.T) {
	assert.Equal(t, 42, feer.Ok(42).ValueOr(7))
	assert.Equal(t, 7, feer.Fail[int](feer.NewErr("fallback-needed")).ValueOr(7))

	assert.Equal(t, "feer", feer.Ok("feer").ValueOr("default"))
	assert.Equal(t, "default", feer.Fail[string](feer.NewErr("no-string")).ValueOr("default"))

	// Pointer payloads: the fallback is a handle too, never a copy of
	// the pointed-to value.
	primary, fallback := 1, 2
	assert.Same(t, &primary, feer.Ok(&primary).ValueOr(&fallback))
	assert.Same(t, &fallback, feer.Fail[*int](feer.NewErr("no-ptr")).ValueOr(&fallback))
}

func TestResult_Get(t *testing.T) {
	v, err := feer.Ok(8080).Get()
	require.NoError(t, err)
	require.Equal(t, 8080, v)

	v, err = feer.Fail[int](feer.NewErr("nope")).Get()
	require.Error(t, err)
	require.Equal(t, 0, v)
	require.Equal(t, "nope", err.Error())
}

func TestResult_ZeroValueIsSuccess(t *testing.T) {
	var r feer.Result[int]

	assert.True(t, r.IsOk())
	assert.Equal(t, 0, r.Value())
}

func TestResult_RepeatedValueAccessIsDefined(t *testing.T) {
	r := feer.Ok("feer")

	assert.Equal(t, "feer", r.Value())
	assert.Equal(t, "feer", r.Value())
}

func TestResult_StructPayload(t *testing.T) {
	type endpoint struct {
		Host string
		Port int
	}

	r := feer.Ok(endpoint{Host: "localhost", Port: 8080})
	require.True(t, r.IsOk())
	assert.Equal(t, endpoint{Host: "localhost", Port: 8080}, r.Value())
}

func TestResult_RejectsErrAsSuccessType(t *testing.T) {
	testutil.MustPanic(t, func() {
		_ = feer.Ok(feer.NewErr("ambiguous"))
	})
	testutil.MustPanic(t, func() {
		_ = feer.Fail[feer.Err](feer.NewErr("ambiguous"))
	})
	testutil.MustPanic(t, func() {
		_ = feer.Failf[*feer.Err]("ambiguous")
	})
}

func TestResult_EndToEndParsePort(t *testing.T) {
	ok := parsePort("8080")
	require.True(t, ok.IsOk())
	require.Equal(t, 8080, ok.Value())

	for _, input := range []string{"", "abc", "0", "99999"} {
		bad := parsePort(input)
		require.True(t, bad.IsErr(), "input %q", input)
		require.Equal(t, "invalid port", bad.Error().Message())
	}
}
