package reader_test

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/reader"
	"github.com/reoring/datagraph/upload"
	"github.com/reoring/datagraph/visitor"
)

func toMap(t *testing.T, v any) any {
	t.Helper()
	m, err := visitor.ToMap(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestJSON_ReadOrderedAndEmpty(t *testing.T) {
	r := reader.NewJSON()
	v, err := r.Read([]byte(`{"b":1,"a":[true,null]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := v.(*datagraph.Object)
	if !ok || obj.Oldest().Key != "b" {
		t.Fatalf("want ordered object got=%#v", v)
	}
	if v, err := r.Read(nil); err != nil || v != nil {
		t.Fatalf("want nil for empty input got=%v err=%v", v, err)
	}
}

func TestJSON_DuplicateKeyRejected(t *testing.T) {
	_, err := reader.NewJSON().Read([]byte(`{"a":1,"a":2}`))
	if !errors.Is(err, reader.ErrMalformed) {
		t.Fatalf("want ErrMalformed got=%v", err)
	}
	iss, ok := datagraph.AsIssues(err)
	if !ok || iss[0].Code != datagraph.CodeDuplicateKey {
		t.Fatalf("want duplicate_key issue got=%v", err)
	}
	if _, err := (&reader.JSON{}).Read([]byte(`{"a":1,"a":2}`)); err != nil {
		t.Fatalf("zero value should accept duplicates: %v", err)
	}
}

func TestForm_NestedBrackets(t *testing.T) {
	v, err := reader.Form{}.Read([]byte("foo=bar&bar%5Bfoo%5D=nested&tags[]=a&tags[]=b&x=1+2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"foo":  "bar",
		"bar":  map[string]any{"foo": "nested"},
		"tags": []any{"a", "b"},
		"x":    "1 2",
	}
	if diff := cmp.Diff(want, toMap(t, v)); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_Empty(t *testing.T) {
	if v, err := (reader.Form{}).Read([]byte("  ")); err != nil || v != nil {
		t.Fatalf("want nil got=%v err=%v", v, err)
	}
}

func TestXML_ReadDocument(t *testing.T) {
	v, err := reader.XML{}.Read([]byte(`<foo><bar>1</bar></foo>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, ok := v.(*etree.Document)
	if !ok || doc.Root().Tag != "foo" {
		t.Fatalf("want document rooted at foo got=%#v", v)
	}
	if _, err := (reader.XML{}).Read([]byte(`<foo a=></foo>`)); !errors.Is(err, reader.ErrMalformed) {
		t.Fatalf("want ErrMalformed got=%v", err)
	}
}

const multipartBody = "--XYZ\r\n" +
	"Content-Disposition: form-data; name=\"title\"\r\n\r\n" +
	"hello\r\n" +
	"--XYZ\r\n" +
	"Content-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n" +
	"Content-Type: text/plain\r\n\r\n" +
	"abc\r\n" +
	"--XYZ--\r\n"

func TestMultipart_WithFile(t *testing.T) {
	r := &reader.Multipart{}
	v, err := reader.ReadAs(r, []byte(multipartBody), mediatype.MustParse("multipart/form-data; boundary=XYZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, ok := v.(*upload.Body)
	if !ok {
		t.Fatalf("want *upload.Body got=%T", v)
	}
	f, err := body.File("file")
	if err != nil || f.Name != "a.txt" || string(f.Data) != "abc" || f.ContentType != "text/plain" {
		t.Fatalf("unexpected file: %#v err=%v", f, err)
	}
	if got := body.Part("title"); got != "hello" {
		t.Fatalf("want=hello got=%v", got)
	}
}

func TestMultipart_ValuesOnlySniffsBoundary(t *testing.T) {
	data := "--B1\r\nContent-Disposition: form-data; name=\"a[b]\"\r\n\r\nx\r\n--B1--\r\n"
	v, err := (&reader.Multipart{}).Read([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"a": map[string]any{"b": "x"}}
	if diff := cmp.Diff(want, toMap(t, v)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFactory_Selection(t *testing.T) {
	f := reader.NewFactory()
	f.Add("json", reader.NewJSON(), 16)
	f.Add("form", reader.Form{}, 8)
	f.Add("multipart", &reader.Multipart{}, 1)
	f.Add("xml", reader.XML{}, 0)

	if name, _, _ := f.Default(); name != "json" {
		t.Fatalf("want default json got=%s", name)
	}
	if name, _, _ := f.Default("xml", "form"); name != "form" {
		t.Fatalf("want form got=%s", name)
	}
	cases := map[string]string{
		"application/atom+xml":              "xml",
		"application/vnd.api+json":          "json",
		"application/x-www-form-urlencoded": "form",
		"multipart/form-data; boundary=x":   "multipart",
	}
	for ct, want := range cases {
		if name, _, ok := f.ByContentType(ct); !ok || name != want {
			t.Fatalf("%s: want=%s got=%s", ct, want, name)
		}
	}
	if _, _, ok := f.ByContentType("image/png"); ok {
		t.Fatalf("image/png should not resolve")
	}
	if _, ok := f.ByName("XML"); !ok {
		t.Fatalf("lookup by name should be case-insensitive")
	}
}
