package visitor_test

import (
	"strings"
	"testing"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/xmlsink"
	"github.com/reoring/datagraph/visitor"
)

func writeJSONx(v any) string {
	sink := xmlsink.NewCompact()
	datagraph.Traverse(v, visitor.NewJSONxVisitor(sink))
	return sink.String()
}

func TestJSONxVisitor_NullLeaf(t *testing.T) {
	got := writeJSONx(datagraph.ObjectOf("foo", "bar", "bar", nil))
	want := `<json:object xmlns:json="http://www.ibm.com/xmlns/prod/2009/jsonx">` +
		`<json:string name="foo">bar</json:string><json:null name="bar"/>` +
		`</json:object>`
	if got != want {
		t.Fatalf("want=%s\ngot=%s", want, got)
	}
}

func TestJSONxVisitor_NamespaceDeclaredOnce(t *testing.T) {
	got := writeJSONx([]any{datagraph.ObjectOf("a", []any{1, true}), "s"})
	want := `<json:array xmlns:json="http://www.ibm.com/xmlns/prod/2009/jsonx">` +
		`<json:object><json:array name="a"><json:number>1</json:number><json:boolean>true</json:boolean></json:array></json:object>` +
		`<json:string>s</json:string>` +
		`</json:array>`
	if got != want {
		t.Fatalf("want=%s\ngot=%s", want, got)
	}
	if n := strings.Count(got, "xmlns:json="); n != 1 {
		t.Fatalf("want one namespace declaration got=%d", n)
	}
}

func TestJSONxVisitor_EmptyObject(t *testing.T) {
	got := writeJSONx(datagraph.NewObject())
	if want := `<json:object xmlns:json="http://www.ibm.com/xmlns/prod/2009/jsonx"/>`; got != want {
		t.Fatalf("want=%s got=%s", want, got)
	}
}
