package visitor

import (
	"github.com/reoring/datagraph"
)

type entry struct {
	key   string
	value any
}

// serializer rebuilds the traversed graph. The container type of objects is
// chosen by the policy functions; arrays are always []any.
type serializer[O any] struct {
	newObject func(name string, depth int) O
	setValue  func(obj O, key string, value any)

	objects []O
	arrays  [][]any
	entries []entry

	lastObject O
	lastArray  []any

	result any
	kind   string // "object", "array", "scalar" or "" before a traversal
}

func (s *serializer[O]) depth() int { return len(s.objects) + len(s.arrays) }

func (s *serializer[O]) VisitObjectStart(name string) {
	s.objects = append(s.objects, s.newObject(name, s.depth()))
}

func (s *serializer[O]) VisitObjectEnd() {
	n := len(s.objects)
	if n == 0 {
		panic("visitor: VisitObjectEnd without matching VisitObjectStart")
	}
	s.lastObject = s.objects[n-1]
	s.objects = s.objects[:n-1]
	if s.depth() == 0 {
		s.result, s.kind = s.lastObject, "object"
	}
}

func (s *serializer[O]) VisitObjectValueStart(key string, value any) {
	s.entries = append(s.entries, entry{key: key, value: value})
}

func (s *serializer[O]) VisitObjectValueEnd() {
	e := s.popEntry("VisitObjectValueEnd")
	n := len(s.objects)
	if n == 0 {
		panic("visitor: VisitObjectValueEnd outside of an object")
	}
	s.setValue(s.objects[n-1], e.key, s.valueOf(e.value))
}

func (s *serializer[O]) VisitArrayStart() {
	s.arrays = append(s.arrays, []any{})
}

func (s *serializer[O]) VisitArrayEnd() {
	n := len(s.arrays)
	if n == 0 {
		panic("visitor: VisitArrayEnd without matching VisitArrayStart")
	}
	s.lastArray = s.arrays[n-1]
	s.arrays = s.arrays[:n-1]
	if s.depth() == 0 {
		s.result, s.kind = s.lastArray, "array"
	}
}

func (s *serializer[O]) VisitArrayValueStart(value any) {
	s.entries = append(s.entries, entry{value: value})
}

func (s *serializer[O]) VisitArrayValueEnd() {
	e := s.popEntry("VisitArrayValueEnd")
	n := len(s.arrays)
	if n == 0 {
		panic("visitor: VisitArrayValueEnd outside of an array")
	}
	s.arrays[n-1] = append(s.arrays[n-1], s.valueOf(e.value))
}

func (s *serializer[O]) VisitValue(value any) {
	if s.depth() == 0 {
		s.result, s.kind = Scalar(value), "scalar"
	}
}

func (s *serializer[O]) popEntry(hook string) entry {
	n := len(s.entries)
	if n == 0 {
		panic("visitor: " + hook + " without matching start")
	}
	e := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return e
}

// valueOf picks the container that was completed for value, or normalizes a
// leaf. Nested containers always end before their entry does.
func (s *serializer[O]) valueOf(value any) any {
	switch {
	case datagraph.IsObject(value):
		return s.lastObject
	case datagraph.IsArray(value):
		return s.lastArray
	default:
		return Scalar(value)
	}
}

func (s *serializer[O]) object() (O, error) {
	var zero O
	if s.kind != "object" {
		return zero, &datagraph.MismatchError{Want: "object", Got: s.got()}
	}
	return s.result.(O), nil
}

func (s *serializer[O]) array() ([]any, error) {
	if s.kind != "array" {
		return nil, &datagraph.MismatchError{Want: "array", Got: s.got()}
	}
	return s.result.([]any), nil
}

func (s *serializer[O]) value() (any, error) {
	switch s.kind {
	case "object", "array":
		return s.result, nil
	}
	return nil, datagraph.InvalidDataf("traversal built %s", s.got())
}

func (s *serializer[O]) got() string {
	if s.kind == "" {
		return "nothing"
	}
	return s.kind
}
