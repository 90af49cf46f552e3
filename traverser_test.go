package datagraph_test

import (
	"fmt"
	"iter"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/datagraph"
)

// recorder logs every hook call in order.
type recorder struct{ calls []string }

func (r *recorder) VisitObjectStart(name string) { r.calls = append(r.calls, "objectStart:"+name) }
func (r *recorder) VisitObjectEnd()              { r.calls = append(r.calls, "objectEnd") }
func (r *recorder) VisitObjectValueStart(key string, value any) {
	r.calls = append(r.calls, "objectValueStart:"+key)
}
func (r *recorder) VisitObjectValueEnd()     { r.calls = append(r.calls, "objectValueEnd") }
func (r *recorder) VisitArrayStart()         { r.calls = append(r.calls, "arrayStart") }
func (r *recorder) VisitArrayEnd()           { r.calls = append(r.calls, "arrayEnd") }
func (r *recorder) VisitArrayValueStart(any) { r.calls = append(r.calls, "arrayValueStart") }
func (r *recorder) VisitArrayValueEnd()      { r.calls = append(r.calls, "arrayValueEnd") }
func (r *recorder) VisitValue(v any)         { r.calls = append(r.calls, fmt.Sprintf("value:%v", v)) }

func TestTraverse_ObjectOrderAndNesting(t *testing.T) {
	v := datagraph.ObjectOf(
		"foo", 1,
		"bar", []any{"x", nil},
		"baz", datagraph.RecordOf("inner", datagraph.Property{Key: "a", Value: true}),
	)
	r := &recorder{}
	datagraph.Traverse(v, r)

	want := []string{
		"objectStart:record",
		"objectValueStart:foo", "value:1", "objectValueEnd",
		"objectValueStart:bar", "arrayStart",
		"arrayValueStart", "value:x", "arrayValueEnd",
		"arrayValueStart", "value:<nil>", "arrayValueEnd",
		"arrayEnd", "objectValueEnd",
		"objectValueStart:baz", "objectStart:inner",
		"objectValueStart:a", "value:true", "objectValueEnd",
		"objectEnd", "objectValueEnd",
		"objectEnd",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_EmptyObjectEmitsOnlyStartEnd(t *testing.T) {
	r := &recorder{}
	datagraph.Traverse(datagraph.NewObject(), r)
	want := []string{"objectStart:record", "objectEnd"}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_ScalarRootGoesToVisitValue(t *testing.T) {
	r := &recorder{}
	datagraph.Traverse("hello", r)
	if len(r.calls) != 1 || r.calls[0] != "value:hello" {
		t.Fatalf("want=[value:hello] got=%v", r.calls)
	}
}

func TestTraverse_MapKeysSorted(t *testing.T) {
	r := &recorder{}
	datagraph.Traverse(map[string]any{"b": 1, "a": 2}, r)
	got := strings.Join(r.calls, ",")
	if !strings.Contains(got, "objectValueStart:a,value:2,objectValueEnd,objectValueStart:b") {
		t.Fatalf("unexpected order: %s", got)
	}
}

type person struct{ name string }

func (p person) Serialize() any {
	return datagraph.ObjectOf("name", p.name)
}

func TestTraverse_RevealsSerializableAndIterators(t *testing.T) {
	var seq iter.Seq[any] = func(yield func(any) bool) {
		for _, v := range []any{"a", "b"} {
			if !yield(v) {
				return
			}
		}
	}
	v := datagraph.ObjectOf("who", person{name: "ann"}, "letters", seq)
	r := &recorder{}
	datagraph.Traverse(v, r)
	got := strings.Join(r.calls, ",")
	want := "objectStart:record," +
		"objectValueStart:who,objectStart:record,objectValueStart:name,value:ann,objectValueEnd,objectEnd,objectValueEnd," +
		"objectValueStart:letters,arrayStart,arrayValueStart,value:a,arrayValueEnd,arrayValueStart,value:b,arrayValueEnd,arrayEnd,objectValueEnd," +
		"objectEnd"
	if got != want {
		t.Fatalf("want=%s\ngot=%s", want, got)
	}
}

func TestTraverse_NopVisitorEmbedding(t *testing.T) {
	n := 0
	c := counterVisitor{n: &n}
	datagraph.Traverse([]any{1, 2, 3}, c)
	if n != 3 {
		t.Fatalf("want=3 got=%d", n)
	}
}

type counterVisitor struct {
	datagraph.NopVisitor
	n *int
}

func (c counterVisitor) VisitValue(any) { *c.n++ }

func TestRequireContainer_RejectsScalar(t *testing.T) {
	if _, err := datagraph.RequireContainer(42); err == nil {
		t.Fatalf("expected error for scalar root")
	}
	if _, err := datagraph.RequireContainer([]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
