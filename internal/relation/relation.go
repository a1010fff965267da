package relation

import (
	"bytes"
	"encoding/json"
)

// State tells which shape a relational field arrived in.
type State int

const (
	Absent State = iota
	Reference
	Resolved
)

func (s State) String() string {
	switch s {
	case Reference:
		return "reference"
	case Resolved:
		return "resolved"
	default:
		return "absent"
	}
}

// Relation is a relational field the API returns either populated (an embedded
// object), as a bare identifier string, or not at all.
type Relation[T any] struct {
	state State
	id    string
	value T
}

// Resolve wraps a populated object.
func Resolve[T any](v T) Relation[T] {
	return Relation[T]{state: Resolved, value: v}
}

// Ref wraps a bare identifier. An empty id is Absent.
func Ref[T any](id string) Relation[T] {
	if id == "" {
		return Relation[T]{}
	}
	return Relation[T]{state: Reference, id: id}
}

func (r Relation[T]) State() State { return r.state }

// ID returns the bare identifier of a Reference, or the identity of a Resolved
// value when it exposes one.
func (r Relation[T]) ID() string {
	switch r.state {
	case Reference:
		return r.id
	case Resolved:
		if ider, ok := any(r.value).(interface{ Identity() string }); ok {
			return ider.Identity()
		}
	}
	return ""
}

// Value returns the embedded object and true only for Resolved relations.
func (r Relation[T]) Value() (T, bool) {
	return r.value, r.state == Resolved
}

// UnmarshalJSON never fails: anything that is neither an object nor a
// non-empty string decodes to Absent.
func (r *Relation[T]) UnmarshalJSON(b []byte) error {
	*r = Relation[T]{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return nil
		}
		*r = Ref[T](id)
	case '{':
		var v T
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil
		}
		*r = Resolve(v)
	}
	return nil
}

func (r Relation[T]) MarshalJSON() ([]byte, error) {
	switch r.state {
	case Reference:
		return json.Marshal(r.id)
	case Resolved:
		return json.Marshal(r.value)
	default:
		return []byte("null"), nil
	}
}
