// Package query is the in-memory search, facet and pagination engine behind
// every list view. All functions are pure and never mutate their input.
package query

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FieldPath names a record field, dotted for nested sub-records ("repos.accorde").
type FieldPath string

// Accessor resolves one field of a record to its string form. The boolean is
// false when the value is absent.
type Accessor[T any] func(rec *T) (string, bool)

// Schema is the path-to-accessor table of one record type.
type Schema[T any] struct {
	name   string
	fields map[FieldPath]Accessor[T]
}

func NewSchema[T any](name string, fields map[FieldPath]Accessor[T]) *Schema[T] {
	copied := make(map[FieldPath]Accessor[T], len(fields))
	for path, accessor := range fields {
		copied[path] = accessor
	}
	return &Schema[T]{name: name, fields: copied}
}

func (s *Schema[T]) Name() string {
	return s.name
}

func (s *Schema[T]) Has(path FieldPath) bool {
	_, ok := s.fields[path]
	return ok
}

// Resolve returns the string value at path. Unknown paths resolve as absent.
func (s *Schema[T]) Resolve(rec *T, path FieldPath) (string, bool) {
	accessor, ok := s.fields[path]
	if !ok {
		return "", false
	}
	return accessor(rec)
}

// Check fails on the first path the schema does not declare.
func (s *Schema[T]) Check(paths ...FieldPath) error {
	for _, path := range paths {
		if !s.Has(path) {
			return fmt.Errorf("query: unknown field %q for %s", path, s.name)
		}
	}
	return nil
}

// Value helpers used to build accessor tables.

func Text(v string) (string, bool) {
	return v, true
}

func Bool(v bool) (string, bool) {
	return strconv.FormatBool(v), true
}

func ID(v uuid.UUID) (string, bool) {
	if v == uuid.Nil {
		return "", false
	}
	return v.String(), true
}

func OptionalInt(v *int) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.Itoa(*v), true
}

func Date(v time.Time) (string, bool) {
	if v.IsZero() {
		return "", false
	}
	return v.Format("2006-01-02"), true
}

func OptionalDate(v *time.Time) (string, bool) {
	if v == nil {
		return "", false
	}
	return Date(*v)
}
