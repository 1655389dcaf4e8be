package dsl

import (
	"context"
	"reflect"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

// Bind builds an object schema and binds it to struct type T. Every declared
// key must resolve to an exported field of T.
func Bind[T any](b Builder) (skemalab.Schema[T], error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	os, ok := s.(*objectSchema)
	if !ok {
		return nil, skemalab.Issues{{Path: "/", Code: skemalab.CodeParseError, Message: "unexpected schema type for Bind"}}
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b Builder) skemalab.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema projects the parsed object map onto struct T.
type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	ptr        bool
	fieldByKey map[string]int // DSL key -> struct field index
}

func newTypedObjectSchema[T any](os *objectSchema) (skemalab.Schema[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	ptr := false
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
		ptr = true
	}
	if rt.Kind() != reflect.Struct {
		return nil, skemalab.Issues{{Path: "/", Code: skemalab.CodeParseError, Message: "Bind[T] requires struct T"}}
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := skemalab.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int)
	keys := append([]string(nil), os.order...)
	if os.unknownTarget != "" {
		keys = append(keys, os.unknownTarget)
	}
	for _, k := range keys {
		i, ok := idxByName[k]
		if !ok {
			return nil, skemalab.Issues{{Path: fieldPath(k), Code: skemalab.CodeParseError, Message: "Bind[T]: no struct field for key '" + k + "'", Hint: rt.String()}}
		}
		fm[k] = i
	}
	return &typedObjectSchema[T]{inner: os, t: rt, ptr: ptr, fieldByKey: fm}, nil
}

func (s *typedObjectSchema[T]) project(m map[string]any) (T, error) {
	var zero T
	rv := reflect.New(s.t).Elem()
	for key, idx := range s.fieldByKey {
		val, ok := m[key]
		if !ok {
			continue
		}
		if !assign(rv.Field(idx), val) {
			return zero, skemalab.Issues{{Path: fieldPath(key), Code: skemalab.CodeInvalidType, Message: "field type mismatch", Hint: rv.Field(idx).Type().String()}}
		}
	}
	if s.ptr {
		return rv.Addr().Interface().(T), nil
	}
	return rv.Interface().(T), nil
}

// assign stores val into fv. Pointer fields are allocated when val fits the
// element type; nil leaves the zero value.
func assign(fv reflect.Value, val any) bool {
	if !fv.CanSet() {
		return true
	}
	if val == nil {
		return true
	}
	vv := reflect.ValueOf(val)
	if vv.Type().AssignableTo(fv.Type()) {
		fv.Set(vv)
		return true
	}
	if fv.Kind() == reflect.Pointer {
		p := reflect.New(fv.Type().Elem())
		if !assign(p.Elem(), val) {
			return false
		}
		fv.Set(p)
		return true
	}
	if convertible(vv.Type(), fv.Type()) {
		fv.Set(vv.Convert(fv.Type()))
		return true
	}
	if vv.Kind() == reflect.Slice && fv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(fv.Type(), vv.Len(), vv.Len())
		for i := 0; i < vv.Len(); i++ {
			if !assign(out.Index(i), vv.Index(i).Interface()) {
				return false
			}
		}
		fv.Set(out)
		return true
	}
	return false
}

// convertible limits reflect conversion to same-kind families so numbers
// never turn into strings.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	fk, tk := from.Kind(), to.Kind()
	switch {
	case fk == tk:
		return true
	case isNumberKind(fk) && isNumberKind(tk):
		return true
	}
	return false
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.project(m)
}

// ParseWithMeta keeps presence in wire shape (DSL keys), not struct shape.
func (s *typedObjectSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	dm, err := s.inner.ParseWithMeta(ctx, v)
	if err != nil {
		return skemalab.Decoded[T]{Presence: dm.Presence}, err
	}
	out, err := s.project(dm.Value)
	return skemalab.Decoded[T]{Value: out, Presence: dm.Presence}, err
}

func (s *typedObjectSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }
