package datagraph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultName is the object name reported to visitors when a value carries no
// display name of its own.
const DefaultName = "record"

// Object is the generic, insertion-ordered object of the value graph. It is
// what the JSON reader produces and what ObjectVisitor builds.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object { return orderedmap.New[string, any]() }

// ObjectOf builds an Object from alternating key/value pairs. It panics when a
// key is not a string or the pair list is odd, which only happens on literal
// misuse in calling code.
func ObjectOf(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("datagraph: ObjectOf needs key/value pairs")
	}
	o := NewObject()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("datagraph: ObjectOf key must be a string")
		}
		o.Set(k, kv[i+1])
	}
	return o
}

// Property is one named entry of a structured value.
type Property struct {
	Key   string
	Value any
}

// Structured is implemented by values that expose ordered named properties.
// The traverser uses them as they are.
type Structured interface {
	DisplayName() string
	Properties() []Property
}

// Serializable is implemented by values that know their own JSON-like
// representation. The result replaces the value before traversal.
type Serializable interface {
	Serialize() any
}

// ArrayCopier is implemented by key/value wrappers that can hand out a copy
// of their content.
type ArrayCopier interface {
	ArrayCopy() *Assoc
}

// Record is a named, ordered set of properties. Records are the dynamic
// objects of the pipeline: exported Go structs become records and
// RecordVisitor rebuilds records.
type Record struct {
	name  string
	props *Object
}

// NewRecord returns an empty record with the given display name.
func NewRecord(name string) *Record {
	return &Record{name: name, props: NewObject()}
}

// RecordOf builds a record from properties in order.
func RecordOf(name string, props ...Property) *Record {
	r := NewRecord(name)
	for _, p := range props {
		r.Set(p.Key, p.Value)
	}
	return r
}

// DisplayName returns the record name, DefaultName when unset.
func (r *Record) DisplayName() string {
	if r == nil || r.name == "" {
		return DefaultName
	}
	return r.name
}

// SetDisplayName renames the record.
func (r *Record) SetDisplayName(name string) { r.name = name }

// Set adds or replaces a property. Replacing keeps the original position.
func (r *Record) Set(key string, value any) {
	if r.props == nil {
		r.props = NewObject()
	}
	r.props.Set(key, value)
}

// Get returns the property value.
func (r *Record) Get(key string) (any, bool) {
	if r == nil || r.props == nil {
		return nil, false
	}
	return r.props.Get(key)
}

// Has reports whether the property exists.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes a property.
func (r *Record) Delete(key string) {
	if r.props != nil {
		r.props.Delete(key)
	}
}

// Len returns the number of properties.
func (r *Record) Len() int {
	if r == nil || r.props == nil {
		return 0
	}
	return r.props.Len()
}

// Keys returns the property names in order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	if r.Len() == 0 {
		return keys
	}
	for p := r.props.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Properties returns the properties in order.
func (r *Record) Properties() []Property {
	out := make([]Property, 0, r.Len())
	if r.Len() == 0 {
		return out
	}
	for p := r.props.Oldest(); p != nil; p = p.Next() {
		out = append(out, Property{Key: p.Key, Value: p.Value})
	}
	return out
}

// MarshalJSON encodes the properties as a JSON object in order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.props == nil {
		return []byte("{}"), nil
	}
	return r.props.MarshalJSON()
}

// objectProperties lists the entries of an ordered object.
func objectProperties(o *Object) []Property {
	if o == nil {
		return nil
	}
	out := make([]Property, 0, o.Len())
	for p := o.Oldest(); p != nil; p = p.Next() {
		out = append(out, Property{Key: p.Key, Value: p.Value})
	}
	return out
}
