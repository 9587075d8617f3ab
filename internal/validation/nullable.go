package validation

import (
	"bytes"
	"encoding/json"
	"reflect"
)

type nullable interface {
	nullableElem() reflect.Type
	fieldValue() any
}

// Nullable is an optional field that may also be explicitly null. The zero
// value means the key was absent; use it with the `omitzero` JSON option so
// absent values stay absent when re-encoded.
type Nullable[T any] struct {
	value T
	valid bool
	set   bool
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, valid: true, set: true}
}

// Null returns an explicitly null Nullable.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true}
}

// IsSet reports whether the key was present, null or not.
func (n Nullable[T]) IsSet() bool { return n.set }

// IsNull reports whether the key was present with a null value.
func (n Nullable[T]) IsNull() bool { return n.set && !n.valid }

// Get returns the value and whether one is present.
func (n Nullable[T]) Get() (T, bool) { return n.value, n.valid }

// Ptr returns nil for absent or null values.
func (n Nullable[T]) Ptr() *T {
	if !n.valid {
		return nil
	}
	v := n.value
	return &v
}

func (n Nullable[T]) nullableElem() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// fieldValue exposes the held value to field rules; absent and null yield nil.
func (n Nullable[T]) fieldValue() any {
	if !n.valid {
		return nil
	}
	return n.value
}

// MarshalJSON encodes null when no value is held.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON is only invoked for keys that are present.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.value, n.valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &n.value); err != nil {
		return err
	}
	n.valid = true
	return nil
}
