package transformer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/transformer"
	"github.com/reoring/datagraph/visitor"
)

func doc(t *testing.T, s string) *etree.Document {
	t.Helper()
	d := etree.NewDocument()
	if err := d.ReadFromString(s); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return d
}

func toMap(t *testing.T, v any) any {
	t.Helper()
	m, err := visitor.ToMap(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestXMLArray_RepeatedNamesAndTypes(t *testing.T) {
	in := doc(t, `<foo>
  <id>1</id>
  <rating>12.45</rating>
  <active>true</active>
  <title>bar</title>
  <entry><title>a</title></entry>
  <entry><title>b</title></entry>
</foo>`)
	got, err := (&transformer.XMLArray{}).Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"id":     int64(1),
		"rating": 12.45,
		"active": true,
		"title":  "bar",
		"entry": []any{
			map[string]any{"title": "a"},
			map[string]any{"title": "b"},
		},
	}
	if diff := cmp.Diff(want, toMap(t, got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestXMLArray_NamespaceFilter(t *testing.T) {
	in := doc(t, `<a:foo xmlns:a="urn:a" xmlns:b="urn:b">
  <a:id>1</a:id>
  <b:skip>x</b:skip>
  <a:ext><b:inner>y</b:inner></a:ext>
</a:foo>`)
	got, err := (&transformer.XMLArray{Namespace: "urn:a"}).Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := got.(*datagraph.Object)
	if _, ok := obj.Get("skip"); ok {
		t.Fatalf("foreign element should be skipped")
	}
	ext, _ := obj.Get("ext")
	raw, ok := ext.(transformer.RawXML)
	if !ok || !strings.Contains(raw.String(), "inner") {
		t.Fatalf("want RawXML for foreign children got=%#v", ext)
	}
}

func TestXMLArray_RejectsNonDocument(t *testing.T) {
	if _, err := (&transformer.XMLArray{}).Transform("x"); !errors.Is(err, datagraph.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData got=%v", err)
	}
}

func TestJSONx_Transform(t *testing.T) {
	in := doc(t, `<json:object xmlns:json="http://www.ibm.com/xmlns/prod/2009/jsonx">
  <json:string name="foo">bar</json:string>
  <json:null name="bar"/>
  <json:number name="n">1.5</json:number>
  <json:boolean name="b">true</json:boolean>
  <json:array name="l"><json:number>1</json:number><json:object><json:string name="x">y</json:string></json:object></json:array>
</json:object>`)
	got, err := transformer.JSONx{}.Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"foo": "bar",
		"bar": nil,
		"n":   1.5,
		"b":   true,
		"l":   []any{int64(1), map[string]any{"x": "y"}},
	}
	if diff := cmp.Diff(want, toMap(t, got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONx_RootMustBeObject(t *testing.T) {
	in := doc(t, `<json:array xmlns:json="http://www.ibm.com/xmlns/prod/2009/jsonx"/>`)
	if _, err := (transformer.JSONx{}).Transform(in); !errors.Is(err, datagraph.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData got=%v", err)
	}
}

func TestSOAP_ExtractsBody(t *testing.T) {
	in := doc(t, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <test xmlns="http://phpsx.org/2014/data"><id>3</id></test>
  </soap:Body>
</soap:Envelope>`)
	got, err := (&transformer.SOAP{Namespace: "http://phpsx.org/2014/data"}).Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"id": int64(3)}, toMap(t, got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	noBody := doc(t, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"/>`)
	if _, err := (&transformer.SOAP{}).Transform(noBody); !errors.Is(err, datagraph.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData got=%v", err)
	}
}

func TestComposite_AndCallback(t *testing.T) {
	c := transformer.Composite{
		transformer.Callback(func(v any) (any, error) { return v.(int) + 1, nil }),
		transformer.Callback(func(v any) (any, error) { return v.(int) * 10, nil }),
	}
	got, err := c.Transform(1)
	if err != nil || got != 20 {
		t.Fatalf("want=20 got=%v err=%v", got, err)
	}
	boom := errors.New("boom")
	c = append(c, transformer.Callback(func(any) (any, error) { return nil, boom }))
	if _, err := c.Transform(1); !errors.Is(err, boom) {
		t.Fatalf("want boom got=%v", err)
	}
}

func TestJSONPatch_Apply(t *testing.T) {
	p, err := transformer.NewJSONPatch([]byte(`[{"op":"replace","path":"/a","value":2},{"op":"add","path":"/tags/-","value":"z"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := p.Transform(datagraph.ObjectOf("a", 1, "tags", []any{"x"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := toMap(t, got).(map[string]any)
	if a, _ := m["a"].(interface{ String() string }); a == nil || a.String() != "2" {
		t.Fatalf("want a=2 got=%#v", m["a"])
	}
	if tags := m["tags"].([]any); len(tags) != 2 || tags[1] != "z" {
		t.Fatalf("unexpected tags: %#v", tags)
	}
	if _, err := transformer.NewJSONPatch([]byte(`{`)); !errors.Is(err, datagraph.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData got=%v", err)
	}
}

func TestMergePatch_RemovesNull(t *testing.T) {
	got, err := (&transformer.MergePatch{Patch: []byte(`{"b":null,"c":"new"}`)}).Transform(datagraph.ObjectOf("a", "x", "b", "y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"a": "x", "c": "new"}
	if diff := cmp.Diff(want, toMap(t, got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_ByMediaType(t *testing.T) {
	cases := map[string]string{
		"application/jsonx":    "*transformer.JSONx",
		"application/soap+xml": "*transformer.SOAP",
		"application/atom+xml": "*transformer.XMLArray",
		"text/xml":             "*transformer.XMLArray",
	}
	for ct, want := range cases {
		got := transformer.Default(mediatype.MustParse(ct))
		if name := typeName(got); name != want {
			t.Fatalf("%s: want=%s got=%s", ct, want, name)
		}
	}
	if transformer.Default(mediatype.MustParse("application/json")) != nil {
		t.Fatalf("json needs no transformer")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *transformer.JSONx:
		return "*transformer.JSONx"
	case *transformer.SOAP:
		return "*transformer.SOAP"
	case *transformer.XMLArray:
		return "*transformer.XMLArray"
	}
	return "?"
}
