package skemalab

import (
	"reflect"
	"strings"
)

// ResolveStructKey resolves the external key of a struct field as used by
// dsl.Bind and PresenceMap paths.
// Priority: skemalab:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if st := sf.Tag.Get("skemalab"); st != "" {
		for _, p := range strings.Split(st, ",") {
			p = strings.TrimSpace(p)
			if name, ok := strings.CutPrefix(p, "name="); ok {
				return name
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		name, _, _ := strings.Cut(jt, ",")
		if name != "" {
			return name
		}
	}
	return sf.Name
}
