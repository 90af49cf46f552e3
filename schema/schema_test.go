package schema_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/schema"
	js "github.com/reoring/datagraph/schema/jsonschema"
)

func newsSchema() schema.Schema {
	return schema.Object().
		Field("id", schema.Integer().Min(1)).Required().
		Field("title", schema.String().MinLength(3).MaxLength(16)).Required().
		Field("active", schema.Boolean()).Default(false).
		Field("tags", schema.Array(schema.String()).Max(3)).
		Field("date", schema.DateTime())
}

func codes(t *testing.T, err error) map[string]string {
	t.Helper()
	iss, ok := datagraph.AsIssues(err)
	if !ok {
		t.Fatalf("want Issues got=%v", err)
	}
	out := map[string]string{}
	for _, it := range iss {
		out[it.Path] = it.Code
	}
	return out
}

func TestObject_CoercesFormStrings(t *testing.T) {
	in := datagraph.ObjectOf("title", "hello", "id", "12", "tags", "one", "date", "2014-01-01T12:34:47+01:00")
	out, err := newsSchema().Validate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := out.(*datagraph.Object)
	var keys []string
	for p := obj.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	if diff := cmp.Diff([]string{"title", "id", "tags", "date", "active"}, keys); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if v, _ := obj.Get("id"); v != int64(12) {
		t.Fatalf("want=int64(12) got=%#v", v)
	}
	if v, _ := obj.Get("active"); v != false {
		t.Fatalf("want default false got=%#v", v)
	}
	if v, _ := obj.Get("tags"); !cmp.Equal(v, []any{"one"}) {
		t.Fatalf("want=[one] got=%#v", v)
	}
	if v, _ := obj.Get("date"); !v.(time.Time).Equal(time.Date(2014, 1, 1, 11, 34, 47, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", v)
	}
}

func TestObject_JSONNumbers(t *testing.T) {
	in := datagraph.ObjectOf("id", json.Number("7"), "title", "abc", "active", true)
	out, err := newsSchema().Validate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, _ := out.(*datagraph.Object).Get("id"); v != int64(7) {
		t.Fatalf("want=int64(7) got=%#v", v)
	}
}

func TestObject_Issues(t *testing.T) {
	in := datagraph.ObjectOf("id", 0, "title", "a", "tags", []any{"a", 1, "c", "d"}, "extra", true)
	_, err := newsSchema().Validate(context.Background(), in)
	got := codes(t, err)
	want := map[string]string{
		"/id":     "too_small",
		"/title":  "too_short",
		"/tags":   "too_long",
		"/tags/1": "invalid_type",
		"/extra":  "unknown_key",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_Required(t *testing.T) {
	_, err := newsSchema().Validate(context.Background(), datagraph.NewObject())
	got := codes(t, err)
	want := map[string]string{"/id": "required", "/title": "required"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_FailFast(t *testing.T) {
	ctx := schema.WithFailFast(context.Background(), true)
	_, err := newsSchema().Validate(ctx, datagraph.ObjectOf("a", 1, "b", 2, "c", 3))
	iss, _ := datagraph.AsIssues(err)
	if len(iss) != 1 {
		t.Fatalf("want one issue got=%d", len(iss))
	}
}

func TestObject_UnknownPolicies(t *testing.T) {
	in := datagraph.ObjectOf("name", "x", "extra", 1)
	strip := schema.Object().Field("name", schema.String()).Unknown(schema.UnknownStrip)
	out, err := strip.Validate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := out.(*datagraph.Object).Get("extra"); ok {
		t.Fatalf("extra must be stripped")
	}
	pass := schema.Object().Field("name", schema.String()).Unknown(schema.UnknownPassthrough)
	out, err = pass.Validate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, _ := out.(*datagraph.Object).Get("extra"); v != 1 {
		t.Fatalf("want extra=1 got=%v", v)
	}
}

func TestObject_Records(t *testing.T) {
	rec := datagraph.RecordOf("news", datagraph.Property{Key: "name", Value: "x"})
	s := schema.Object().Field("name", schema.String()).Required()
	if _, err := s.Validate(context.Background(), rec); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Validate(context.Background(), "x"); err == nil {
		t.Fatalf("want invalid_type for scalar root")
	}
}

func TestPointerEscaping(t *testing.T) {
	s := schema.Object().Field("a/b", schema.Integer())
	_, err := s.Validate(context.Background(), datagraph.ObjectOf("a/b", "x"))
	if got := codes(t, err); got["/a~1b"] != "invalid_type" {
		t.Fatalf("want /a~1b got=%v", got)
	}
}

func TestPrimitives(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		s    schema.Schema
		in   any
		want any
		fail bool
	}{
		{"bool string", schema.Boolean(), "1", true, false},
		{"bool false", schema.Boolean(), "false", false, false},
		{"bool bad", schema.Boolean(), "yes", nil, true},
		{"number", schema.Number(), "1.5", 1.5, false},
		{"integer fraction", schema.Integer(), 1.5, nil, true},
		{"integer from float", schema.Integer(), 2.0, int64(2), false},
		{"enum text", schema.Enum(1, 2), "2", 2, false},
		{"enum miss", schema.Enum("a", "b"), "c", nil, true},
		{"pattern", schema.String().Pattern(`^[a-z]+$`), "abc", "abc", false},
		{"pattern miss", schema.String().Pattern(`^[a-z]+$`), "ab1", nil, true},
		{"any", schema.Any(), []any{1}, []any{1}, false},
		{"uri relative", schema.URI(), "/x", nil, true},
		{"date bad", schema.Date(), "2020-13-01", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.s.Validate(ctx, tc.in)
			if tc.fail {
				if err == nil {
					t.Fatalf("want error got=%v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !cmp.Equal(tc.want, got) {
				t.Fatalf("want=%#v got=%#v", tc.want, got)
			}
		})
	}
}

func TestIssueMessage(t *testing.T) {
	_, err := schema.Integer().Min(3).Validate(context.Background(), 1)
	iss, _ := datagraph.AsIssues(err)
	if len(iss) != 1 || iss[0].Message != "must be at least 3" || iss[0].Path != "/" {
		t.Fatalf("unexpected issues %+v", iss)
	}
}

func TestJSONSchema(t *testing.T) {
	got, err := schema.Document(newsSchema())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := &js.Schema{
		SchemaURI: js.Draft,
		Type:      "object",
		Properties: map[string]*js.Schema{
			"id":     {Type: "integer", Minimum: js.Float(1)},
			"title":  {Type: "string", MinLength: js.Int(3), MaxLength: js.Int(16)},
			"active": {Type: "boolean", Default: false},
			"tags":   {Type: "array", Items: &js.Schema{Type: "string"}, MaxItems: js.Int(3)},
			"date":   {Type: "string", Format: "date-time"},
		},
		Required:             []string{"id", "title"},
		AdditionalProperties: false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}
