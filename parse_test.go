package datagraph_test

import (
	"encoding/json"
	"testing"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/engine"
)

func engineBytes(s string) engine.TokenSource { return engine.NewBytes([]byte(s)) }

func TestParseJSON_PreservesKeyOrder(t *testing.T) {
	v, err := datagraph.ParseJSON([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`), datagraph.DefaultParseOpt())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj, ok := v.(*datagraph.Object)
	if !ok {
		t.Fatalf("want *Object got %T", v)
	}
	var keys []string
	for p := obj.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("want=[z a m] got=%v", keys)
	}
	z, _ := obj.Get("z")
	if z != json.Number("1") {
		t.Fatalf("want json.Number(1) got %#v", z)
	}
}

func TestParseJSON_Empty(t *testing.T) {
	v, err := datagraph.ParseJSON(nil, datagraph.DefaultParseOpt())
	if err != nil || v != nil {
		t.Fatalf("want nil,nil got %v,%v", v, err)
	}
}

func TestParseJSON_DuplicateKey_Error(t *testing.T) {
	_, err := datagraph.ParseJSON([]byte(`[{"a":1,"a":2}]`), datagraph.DefaultParseOpt())
	iss, ok := datagraph.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got: %v", err)
	}
	if iss[0].Code != datagraph.CodeDuplicateKey || iss[0].Path != "/0/a" {
		t.Fatalf("want duplicate_key at /0/a got %s at %s", iss[0].Code, iss[0].Path)
	}
}

func TestParseJSON_DuplicateKey_WarnCollects(t *testing.T) {
	var got datagraph.Issues
	opt := datagraph.ParseOpt{Strictness: datagraph.Strictness{OnDuplicateKey: datagraph.Warn}}
	v, err := datagraph.ParseJSONWith(engineBytes(`{"a":1,"a":2}`), opt, func(i datagraph.Issue) { got = append(got, i) })
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Code != datagraph.CodeDuplicateKey {
		t.Fatalf("want one duplicate_key warning got %v", got)
	}
	a, _ := v.(*datagraph.Object).Get("a")
	if a != json.Number("2") {
		t.Fatalf("want last value to win, got %v", a)
	}
}

func TestParseJSON_MaxDepth(t *testing.T) {
	opt := datagraph.ParseOpt{MaxDepth: 2}
	_, err := datagraph.ParseJSON([]byte(`{"a":{"b":{"c":1}}}`), opt)
	iss, ok := datagraph.AsIssues(err)
	if !ok || iss[0].Code != datagraph.CodeParseError {
		t.Fatalf("want parse_error got %v", err)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := datagraph.ParseJSON([]byte(`{"a":`), datagraph.DefaultParseOpt())
	if err == nil {
		t.Fatalf("expected error for truncated input")
	}
}
