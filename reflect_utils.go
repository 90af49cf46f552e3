package datagraph

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key.
// Priority: datagraph:"name" > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if dt := sf.Tag.Get("datagraph"); dt != "" {
		name, _, _ := strings.Cut(dt, ",")
		if name != "" {
			return name
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if name, _, _ := strings.Cut(jt, ","); name != "" {
			return name
		}
	}
	return sf.Name
}

// omitEmpty reports whether the field asks to be skipped when zero.
func omitEmpty(sf reflect.StructField) bool {
	for _, tag := range []string{sf.Tag.Get("datagraph"), sf.Tag.Get("json")} {
		_, opts, _ := strings.Cut(tag, ",")
		for _, o := range strings.Split(opts, ",") {
			if strings.TrimSpace(o) == "omitempty" {
				return true
			}
		}
	}
	return false
}
