package feer

import (
	"errors"

	json "github.com/goccy/go-json"
)

// JSON forms:
//
//	Err        {"message": "...", "where": {"file": "...", "line": 7, "function": "..."}}
//	Result[T]  {"ok": true, "value": ...} | {"ok": false, "error": {...}}
//	Void       {"ok": true}               | {"ok": false, "error": {...}}
//
// The explicit "ok" field mirrors the tagged union's discriminant.
// Ref and ReadRef have no JSON form: a non-owning pointer identity
// does not survive serialization.

type locationJSON struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function,omitempty"`
}

type errJSON struct {
	Message string        `json:"message"`
	Where   *locationJSON `json:"where,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Err) MarshalJSON() ([]byte, error) {
	return json.Marshal(errJSON{
		Message: e.message,
		Where: &locationJSON{
			File:     e.where.File,
			Line:     e.where.Line,
			Function: e.where.Function,
		},
	})
}

// UnmarshalJSON implements json.Unmarshaler. Decoding constructs the
// payload, so when the document carries no "where" the decode frame is
// captured instead, keeping the location invariant intact. Decoding the
// literal null is a no-op, per the convention for Unmarshaler
// implementations.
func (e *Err) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw errJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.message = raw.Message
	if raw.Where == nil {
		e.where = locate(1)
		return nil
	}
	e.where = Location{
		File:     raw.Where.File,
		Line:     raw.Where.Line,
		Function: raw.Where.Function,
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(struct {
			OK    bool `json:"ok"`
			Error Err  `json:"error"`
		}{OK: false, Error: *r.err})
	}
	return json.Marshal(struct {
		OK    bool `json:"ok"`
		Value T    `json:"value"`
	}{OK: true, Value: r.value})
}

// UnmarshalJSON implements json.Unmarshaler. A failure document must
// carry an error payload; a success document without a "value" decodes
// to a success holding T's zero value. Decoding the literal null is a
// no-op, per the convention for Unmarshaler implementations.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var env struct {
		OK    bool            `json:"ok"`
		Value json.RawMessage `json:"value"`
		Error *Err            `json:"error"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !env.OK {
		if env.Error == nil {
			return errors.New("feer: failure result without error payload")
		}
		*r = Result[T]{err: env.Error}
		return nil
	}
	var value T
	if len(env.Value) > 0 {
		if err := json.Unmarshal(env.Value, &value); err != nil {
			return err
		}
	}
	*r = Result[T]{value: value}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Void) MarshalJSON() ([]byte, error) {
	if v.failed {
		return json.Marshal(struct {
			OK    bool `json:"ok"`
			Error Err  `json:"error"`
		}{OK: false, Error: v.err})
	}
	return json.Marshal(struct {
		OK bool `json:"ok"`
	}{OK: true})
}

// UnmarshalJSON implements json.Unmarshaler. Decoding the literal null
// is a no-op, per the convention for Unmarshaler implementations.
func (v *Void) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var env struct {
		OK    bool `json:"ok"`
		Error *Err `json:"error"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !env.OK {
		if env.Error == nil {
			return errors.New("feer: failure result without error payload")
		}
		*v = Void{err: *env.Error, failed: true}
		return nil
	}
	*v = Void{}
	return nil
}
