package datagraph

import (
	"encoding"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

var (
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	stringerType      = reflect.TypeFor[fmt.Stringer]()
	structuredType    = reflect.TypeFor[Structured]()
	serializableType  = reflect.TypeFor[Serializable]()
)

// Export turns a Go value into something the traverser can walk. Graph
// containers are returned as they are; structs and pointers to structs become
// *Record (named after the Go type, first letter lowered) with one property
// per exported field in declaration order, and typed slices and string-keyed
// maps are exported element by element. Scalars, including values with their
// own text form such as time.Time and *url.URL, are rejected with
// ErrInvalidData.
func Export(v any) (any, error) {
	if isKnownObject(v) || isKnownArray(v) {
		return v, nil
	}
	switch v.(type) {
	case Serializable, ArrayCopier:
		return v, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.IsValid() && isLeafType(rv.Type()) {
		if !graphAware(rv.Type()) {
			return nil, invalidDataf("cannot export scalar %T", v)
		}
		return exportValue(rv), nil
	}
	switch rv.Kind() {
	case reflect.Struct:
		return exportStruct(rv), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		return exportValue(rv), nil
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return exportValue(rv), nil
		}
	}
	return nil, invalidDataf("cannot export %T", v)
}

func exportStruct(rv reflect.Value) *Record {
	rt := rv.Type()
	rec := NewRecord(lowerFirst(rt.Name()))
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		fv := rv.Field(i)
		if omitEmpty(sf) && fv.IsZero() {
			continue
		}
		rec.Set(key, exportValue(fv))
	}
	return rec
}

func exportValue(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	if isLeafType(rv.Type()) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		if rv.Kind() == reflect.Struct && !implementsAny(rv.Type()) {
			ptr := reflect.New(rv.Type())
			ptr.Elem().Set(rv)
			return ptr.Interface()
		}
		return rv.Interface()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return exportValue(rv.Elem())
	case reflect.Struct:
		return exportStruct(rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = exportValue(rv.Index(i))
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Sprint(rv.Interface())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = exportValue(iter.Value())
		}
		return out
	}
	if rv.CanInterface() {
		return rv.Interface()
	}
	return nil
}

// isLeafType reports types exported as they are: graph-aware values and
// values with their own text form (time.Time, *url.URL, ...).
func isLeafType(t reflect.Type) bool {
	if implementsAny(t) {
		return true
	}
	return t.Kind() == reflect.Struct && implementsAny(reflect.PointerTo(t))
}

// graphAware reports types whose value or pointer knows its own graph form.
func graphAware(t reflect.Type) bool {
	for _, it := range []reflect.Type{structuredType, serializableType} {
		if t.Implements(it) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(it)) {
			return true
		}
	}
	return false
}

func implementsAny(t reflect.Type) bool {
	for _, it := range []reflect.Type{structuredType, serializableType, textMarshalerType, stringerType} {
		if t.Implements(it) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return DefaultName
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
