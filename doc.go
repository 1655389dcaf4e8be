// Package skemalab is the schema engine behind the lessons in this repository.
//
// It provides:
//
// - Schema[T]: Parse unknown input into T, or fail with Issues
// - A stable error model (Issues: JSON Pointer path, code, message)
// - Presence metadata (seen / null / default applied) through ParseWithMeta
// - Token sources for JSON and YAML input with duplicate-key/depth/size enforcement
//
// Layout:
// - Keep public engine APIs in the root package; implementations live under internal/.
// - Schema builders live under dsl/, token drivers under source/, messages under i18n/.
// - Each lesson under lessons/ is one schema plus one exported function.
//
// Typical usage:
//
//	form := dsl.Object().
//	    Field("name", dsl.StringOf[string]()).
//	    Field("phoneNumber", dsl.StringOf[string]()).Optional().
//	    MustBuild()
//	v, err := skemalab.ParseFrom(ctx, form, skemalab.JSONBytes(data))
package skemalab
