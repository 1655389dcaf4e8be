// Package dsl provides the schema builders for skemalab.
//
// Overview
//   - Primitives: String() with Min/Max/Length/Email/URL/UUID/Regex/Trim,
//     Number() with Min/Max/Int/Positive, Bool(), Literal(v), Enum(values...).
//   - Composition: Array(elem), Union(options...), DiscriminatedUnion(key, variants...).
//   - Objects: Object().Field(...) declares fields, required by default.
//     Optional(), Default(v), Extend, Merge, Pick, Omit and the Unknown*
//     policies mirror zod's object API. Unknown keys are stripped by default.
//   - Typed results: Bind[T]/MustBind[T] project the parsed map onto struct T.
//     Keys resolve via the skemalab:"name=..." tag, then the json tag, then the
//     field name. Pointer fields receive optional values.
//   - Post-processing: Transform(s, fn) maps a parsed value, Default(s, v)
//     fills nil input.
//   - AnyAdapter: SchemaOf[T](s), StringOf, NumberOf, BoolOf and ArrayOf adapt
//     typed schemas for Field.
//
// File layout
//   - string.go, number.go, primitives.go, enum.go: scalar schemas.
//   - array.go, union.go: composite schemas.
//   - object_builder.go: ObjectBuilder and the Field step.
//   - object_core.go: the built object schema (parse, presence, JSON Schema).
//   - bind.go: typed projection onto structs.
//   - adapter.go, of_helpers.go: AnyAdapter plumbing.
//   - issues.go: issue construction and message rendering.
//
// Example
//
//	type Form struct {
//	    Name        string  `json:"name"`
//	    PhoneNumber *string `json:"phoneNumber"`
//	}
//
//	var form = dsl.MustBind[Form](dsl.Object().
//	    Field("name", dsl.StringOf[string](dsl.String().Min(1))).
//	    Field("phoneNumber", dsl.StringOf[string](dsl.String().Min(5).Max(20))).Optional())
//
//	f, err := form.Parse(ctx, map[string]any{"name": "Matt"})
//	// err == nil, f.PhoneNumber == nil
//
//	_, err = form.Parse(ctx, map[string]any{})
//	// err.Error() == "/name: Required"
//
// Issues carry JSON Pointer paths and zod-compatible messages; see the
// skemalab package for the error model and the parse entry points.
package dsl
