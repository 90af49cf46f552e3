package visitor_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/datetime"
	"github.com/reoring/datagraph/visitor"
)

func TestToMap_RoundTrip(t *testing.T) {
	in := map[string]any{
		"a": 1,
		"b": []any{"x", map[string]any{"c": nil, "d": 2.5}},
		"e": map[string]any{},
		"f": []any{},
	}
	got, err := visitor.ToMap(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestToObject_PreservesOrder(t *testing.T) {
	got, err := visitor.ToObject(fixtureObject())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := got.(*datagraph.Object)
	if !ok {
		t.Fatalf("want *datagraph.Object got=%T", got)
	}
	var keys []string
	for p := obj.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	want := []string{"id", "title", "active", "disabled", "rating", "age", "date", "href", "person", "category", "tags", "entry"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	entries, _ := obj.Get("entry")
	list, ok := entries.([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("want 2 entries got=%#v", entries)
	}
	if _, ok := list[0].(*datagraph.Object); !ok {
		t.Fatalf("want nested *datagraph.Object got=%T", list[0])
	}
}

func TestRecordVisitor_NamesAndRoot(t *testing.T) {
	in := datagraph.RecordOf("outer",
		prop("name", "x"),
		prop("inner", datagraph.RecordOf("inner", prop("ok", true))),
	)
	root := datagraph.NewRecord("person")
	got, err := visitor.ToRecord(in, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Fatalf("want the root record to be filled, got=%#v", got)
	}
	if root.DisplayName() != "person" {
		t.Fatalf("want=person got=%s", root.DisplayName())
	}
	inner, _ := root.Get("inner")
	r, ok := inner.(*datagraph.Record)
	if !ok || r.DisplayName() != "inner" {
		t.Fatalf("want nested record named inner got=%#v", inner)
	}
}

func TestSerializer_LeafNormalization(t *testing.T) {
	href, _ := url.Parse("http://foo.com/a?b=c")
	in := datagraph.ObjectOf(
		"date", time.Date(2014, 1, 1, 12, 34, 47, 0, time.UTC),
		"duration", 90*time.Minute,
		"period", datetime.Period{Days: 3},
		"day", datetime.Date{Year: 2020, Month: time.February, Day: 29},
		"href", href,
		"bytes", []byte("hi"),
	)
	got, err := visitor.ToMap(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"date":     "2014-01-01T12:34:47Z",
		"duration": "PT1H30M",
		"period":   "P3D",
		"day":      "2020-02-29",
		"href":     "http://foo.com/a?b=c",
		"bytes":    "aGk=",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized values mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectVisitor_WrongAccessor(t *testing.T) {
	v := visitor.NewObjectVisitor()
	datagraph.Traverse(fixtureArray(), v)

	if _, err := v.Array(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := v.Object()
	if !errors.Is(err, datagraph.ErrTypeMismatch) || !errors.Is(err, datagraph.ErrInvalidData) {
		t.Fatalf("want type mismatch got=%v", err)
	}
	var me *datagraph.MismatchError
	if !errors.As(err, &me) || me.Want != "object" || me.Got != "array" {
		t.Fatalf("unexpected mismatch detail: %#v", me)
	}
}

func TestMapVisitor_NothingBuilt(t *testing.T) {
	v := visitor.NewMapVisitor()
	if _, err := v.Object(); !errors.Is(err, datagraph.ErrTypeMismatch) {
		t.Fatalf("want type mismatch got=%v", err)
	}
}

func TestToMap_RejectsScalar(t *testing.T) {
	if _, err := visitor.ToMap("scalar"); !errors.Is(err, datagraph.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData got=%v", err)
	}
}

func TestSerializer_StackUnderflowPanics(t *testing.T) {
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "VisitObjectEnd") {
			t.Fatalf("want panic naming the hook got=%v", r)
		}
	}()
	visitor.NewObjectVisitor().VisitObjectEnd()
}
