package visitor

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/reoring/datagraph"
)

// RecordVisitor rebuilds the traversed graph with *datagraph.Record objects
// carrying the traversed display names.
type RecordVisitor struct {
	serializer[*datagraph.Record]
}

// NewRecordVisitor returns a RecordVisitor. When root is not nil it receives
// the properties of the outermost object instead of a fresh record.
func NewRecordVisitor(root *datagraph.Record) *RecordVisitor {
	v := &RecordVisitor{}
	v.newObject = func(name string, depth int) *datagraph.Record {
		if depth == 0 && root != nil {
			return root
		}
		return datagraph.NewRecord(name)
	}
	v.setValue = func(r *datagraph.Record, key string, value any) { r.Set(key, value) }
	return v
}

// Object returns the record built from an object root.
func (v *RecordVisitor) Object() (*datagraph.Record, error) { return v.object() }

// Array returns the list built from an array root.
func (v *RecordVisitor) Array() ([]any, error) { return v.array() }

// Value returns whichever container the traversal built.
func (v *RecordVisitor) Value() (any, error) { return v.value() }

// ObjectVisitor rebuilds the traversed graph with ordered *datagraph.Object
// values.
type ObjectVisitor struct {
	serializer[*datagraph.Object]
}

// NewObjectVisitor returns an ObjectVisitor.
func NewObjectVisitor() *ObjectVisitor {
	v := &ObjectVisitor{}
	v.newObject = func(string, int) *datagraph.Object { return orderedmap.New[string, any]() }
	v.setValue = func(o *datagraph.Object, key string, value any) { o.Set(key, value) }
	return v
}

// Object returns the object built from an object root.
func (v *ObjectVisitor) Object() (*datagraph.Object, error) { return v.object() }

// Array returns the list built from an array root.
func (v *ObjectVisitor) Array() ([]any, error) { return v.array() }

// Value returns whichever container the traversal built.
func (v *ObjectVisitor) Value() (any, error) { return v.value() }

// MapVisitor rebuilds the traversed graph with plain map[string]any values.
// Go maps do not keep insertion order.
type MapVisitor struct {
	serializer[map[string]any]
}

// NewMapVisitor returns a MapVisitor.
func NewMapVisitor() *MapVisitor {
	v := &MapVisitor{}
	v.newObject = func(string, int) map[string]any { return map[string]any{} }
	v.setValue = func(m map[string]any, key string, value any) { m[key] = value }
	return v
}

// Object returns the map built from an object root.
func (v *MapVisitor) Object() (map[string]any, error) { return v.object() }

// Array returns the list built from an array root.
func (v *MapVisitor) Array() ([]any, error) { return v.array() }

// Value returns whichever container the traversal built.
func (v *MapVisitor) Value() (any, error) { return v.value() }

var (
	_ datagraph.Visitor = (*RecordVisitor)(nil)
	_ datagraph.Visitor = (*ObjectVisitor)(nil)
	_ datagraph.Visitor = (*MapVisitor)(nil)
)

// ToRecord rebuilds v with records, filling root from the outermost object
// when given. Scalars are rejected with datagraph.ErrInvalidData.
func ToRecord(v any, root *datagraph.Record) (any, error) {
	return build(v, NewRecordVisitor(root))
}

// ToObject rebuilds v with ordered objects.
func ToObject(v any) (any, error) { return build(v, NewObjectVisitor()) }

// ToMap rebuilds v with plain maps and slices.
func ToMap(v any) (any, error) { return build(v, NewMapVisitor()) }

type valueVisitor interface {
	datagraph.Visitor
	Value() (any, error)
}

func build(v any, vis valueVisitor) (any, error) {
	c, err := datagraph.RequireContainer(v)
	if err != nil {
		return nil, err
	}
	datagraph.Traverse(c, vis)
	return vis.Value()
}
