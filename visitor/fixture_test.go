package visitor_test

import (
	"net/url"
	"time"

	"github.com/reoring/datagraph"
)

func prop(k string, v any) datagraph.Property { return datagraph.Property{Key: k, Value: v} }

// fixtureObject covers every leaf kind plus nested records and arrays.
func fixtureObject() *datagraph.Object {
	href, _ := url.Parse("http://foo.com")
	return datagraph.ObjectOf(
		"id", 1,
		"title", "foobar",
		"active", true,
		"disabled", false,
		"rating", 12.45,
		"age", nil,
		"date", time.Date(2014, 1, 1, 12, 34, 47, 0, time.FixedZone("", 3600)),
		"href", href,
		"person", datagraph.RecordOf("", prop("title", "Foo")),
		"category", datagraph.RecordOf("", prop("general",
			datagraph.RecordOf("", prop("news",
				datagraph.RecordOf("", prop("technic", "Foo")))))),
		"tags", []any{"bar", "foo", "test"},
		"entry", []any{
			datagraph.RecordOf("", prop("title", "bar")),
			datagraph.RecordOf("", prop("title", "foo")),
		},
	)
}

func fixtureArray() []any {
	return []any{
		datagraph.ObjectOf("id", 1, "title", "foobar"),
		datagraph.ObjectOf("id", 2, "title", "foo"),
	}
}
