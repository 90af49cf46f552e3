package datagraph

import (
	"encoding"
	"encoding/json"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Reveal normalizes a value of unknown origin before it is classified. The
// capability checks run in a fixed order: Structured values are returned as
// they are, Serializable values are replaced by their serialization,
// ArrayCopier values by their copy and iterators are drained. Everything else
// is returned unchanged. The result is not revealed again; nested values are
// revealed when the traverser reaches them.
func Reveal(v any) any {
	switch t := v.(type) {
	case Structured:
		return t
	case Serializable:
		return t.Serialize()
	case ArrayCopier:
		return t.ArrayCopy()
	case iter.Seq[any]:
		return slices.Collect(t)
	case func(func(any) bool):
		return slices.Collect(iter.Seq[any](t))
	case iter.Seq2[string, any]:
		return drainPairs(t)
	case func(func(string, any) bool):
		return drainPairs(iter.Seq2[string, any](t))
	}
	return v
}

func drainPairs(seq iter.Seq2[string, any]) *Assoc {
	a := NewAssoc()
	for k, v := range seq {
		a.Set(k, v)
	}
	return a
}

// IsObject reports whether v is object-like: a Structured value, an ordered
// Object, an associative Assoc or any map with string keys.
func IsObject(v any) bool {
	if isKnownObject(v) {
		return true
	}
	_, kind := typedContainer(v)
	return kind == reflect.Map
}

// IsArray reports whether v is array-like: an Assoc list or any slice or
// array other than a byte slice. Empty lists count.
func IsArray(v any) bool {
	if isKnownArray(v) {
		return true
	}
	_, kind := typedContainer(v)
	return kind == reflect.Slice
}

func isKnownObject(v any) bool {
	switch t := v.(type) {
	case Structured, *Object, map[string]any:
		return true
	case *Assoc:
		return !t.IsList()
	}
	return false
}

func isKnownArray(v any) bool {
	switch t := v.(type) {
	case []any, []string, []int, []int64, []float64, []bool,
		[]map[string]any, []*Record, []*Object:
		return true
	case *Assoc:
		return t.IsList()
	}
	return false
}

// typedContainer classifies containers the type switches do not name. It
// returns reflect.Map for string-keyed maps, reflect.Slice for slices and
// arrays, and reflect.Invalid otherwise. Byte slices and values with their
// own text form are leaves.
func typedContainer(v any) (reflect.Value, reflect.Kind) {
	if v == nil {
		return reflect.Value{}, reflect.Invalid
	}
	if _, ok := v.(encoding.TextMarshaler); ok {
		return reflect.Value{}, reflect.Invalid
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return rv, reflect.Map
		}
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return rv, reflect.Slice
		}
	case reflect.Array:
		return rv, reflect.Slice
	}
	return reflect.Value{}, reflect.Invalid
}

// IsScalar reports whether v is neither object-like nor array-like.
func IsScalar(v any) bool { return !IsObject(v) && !IsArray(v) }

// IsEmpty mirrors loose falsiness: nil, false, numeric zero, "" and "0",
// and containers without entries are empty.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == "" || t == "0"
	case json.Number:
		f, err := t.Float64()
		return t == "" || (err == nil && f == 0)
	case int:
		return t == 0
	case int8:
		return t == 0
	case int16:
		return t == 0
	case int32:
		return t == 0
	case int64:
		return t == 0
	case uint:
		return t == 0
	case uint8:
		return t == 0
	case uint16:
		return t == 0
	case uint32:
		return t == 0
	case uint64:
		return t == 0
	case float32:
		return t == 0
	case float64:
		return t == 0
	case *Record:
		return t.Len() == 0
	case Structured:
		return len(t.Properties()) == 0
	case *Object:
		return t == nil || t.Len() == 0
	case *Assoc:
		return t.Len() == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// objectEntries returns the name and ordered entries of an object-like value.
func objectEntries(v any) (string, []Property) {
	switch t := v.(type) {
	case Structured:
		return t.DisplayName(), t.Properties()
	case *Object:
		return DefaultName, objectProperties(t)
	case map[string]any:
		props := make([]Property, 0, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			props = append(props, Property{Key: k, Value: t[k]})
		}
		return DefaultName, props
	case *Assoc:
		return DefaultName, t.Properties()
	}
	rv, kind := typedContainer(v)
	if kind != reflect.Map {
		return DefaultName, nil
	}
	keys := make([]string, 0, rv.Len())
	values := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		k := it.Key().String()
		keys = append(keys, k)
		values[k] = it.Value().Interface()
	}
	slices.Sort(keys)
	props := make([]Property, len(keys))
	for i, k := range keys {
		props[i] = Property{Key: k, Value: values[k]}
	}
	return DefaultName, props
}

// arrayElements returns the elements of an array-like value.
func arrayElements(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		return toAny(t)
	case []int:
		return toAny(t)
	case []int64:
		return toAny(t)
	case []float64:
		return toAny(t)
	case []bool:
		return toAny(t)
	case []map[string]any:
		return toAny(t)
	case []*Record:
		return toAny(t)
	case []*Object:
		return toAny(t)
	case *Assoc:
		return t.Values()
	}
	rv, kind := typedContainer(v)
	if kind != reflect.Slice {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// Entries reveals v and returns its display name and ordered entries when it
// is object-like.
func Entries(v any) (string, []Property, bool) {
	v = Reveal(v)
	if !IsObject(v) {
		return "", nil, false
	}
	name, props := objectEntries(v)
	return name, props, true
}

// Elements reveals v and returns its elements when it is array-like.
func Elements(v any) ([]any, bool) {
	v = Reveal(v)
	if !IsArray(v) {
		return nil, false
	}
	return arrayElements(v), true
}
