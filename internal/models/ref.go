package models

import "encoding/json"

// Ref is a reference to another entity: either only its id (unresolved) or
// the populated entity (resolved). It serializes as the id or the entity.
type Ref[T any] struct {
	ID    uint
	value *T
}

// Unresolved references an entity by id only
func Unresolved[T any](id uint) Ref[T] {
	return Ref[T]{ID: id}
}

// Resolved references a populated entity
func Resolved[T any](id uint, v T) Ref[T] {
	return Ref[T]{ID: id, value: &v}
}

// IsResolved reports whether the entity has been populated
func (r Ref[T]) IsResolved() bool {
	return r.value != nil
}

// Value returns the populated entity, if any
func (r Ref[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.value != nil {
		return json.Marshal(r.value)
	}
	if r.ID == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
