package dsl

import (
	"github.com/reoring/skemalab"
)

// SchemaOf converts an arbitrary Schema[T] into an AnyAdapter for Field.
func SchemaOf[T any](s skemalab.Schema[T]) AnyAdapter { return anyAdapterFromSchema[T](s) }

// ArrayOf adapts Array(elem) to AnyAdapter for use in object builders.
// Example: Field("tags", ArrayOf[string](String()))
func ArrayOf[E any](elem skemalab.Schema[E]) AnyAdapter {
	return anyAdapterFromSchema[[]E](Array[E](elem))
}

// ArrayOfSchema converts a constrained ArrayBuilder[E] into an AnyAdapter.
// Example: Field("tags", ArrayOfSchema[string](Array(String()).Min(2)))
func ArrayOfSchema[E any](ab ArrayBuilder[E]) AnyAdapter { return anyAdapterFromSchema[[]E](ab) }
