package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestConvert_JSONToXML(t *testing.T) {
	out, _, err := run(t, `{"id": 1, "title": "foo"}`, "convert", "--to", "xml")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<record type="object">` + "\n" +
		`  <id type="integer">1</id>` + "\n" +
		`  <title type="string">foo</title>` + "\n" +
		`</record>` + "\n"
	if out != want {
		t.Fatalf("want=%s\ngot=%s", want, out)
	}
}

func TestConvert_FormToJSON(t *testing.T) {
	out, _, err := run(t, "a=1&b[c]=2", "convert", "--from", "form")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "{\n    \"a\": \"1\",\n    \"b\": {\n        \"c\": \"2\"\n    }\n}\n"
	if out != want {
		t.Fatalf("want=%q got=%q", want, out)
	}
}

func TestConvert_MediaTypeTarget(t *testing.T) {
	out, _, err := run(t, `{"a": true}`, "convert", "--to", "application/x-www-form-urlencoded")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "a=1\n" {
		t.Fatalf("want=%q got=%q", "a=1\n", out)
	}
}

func TestConvert_Patch(t *testing.T) {
	patch := writeFile(t, "patch.json", `[{"op": "replace", "path": "/a", "value": 2}]`)
	out, _, err := run(t, `{"a": 1}`, "convert", "--patch", patch, "--to", "form")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "a=2\n" {
		t.Fatalf("want=%q got=%q", "a=2\n", out)
	}
}

func TestConvert_UnknownFormat(t *testing.T) {
	if _, _, err := run(t, `{}`, "convert", "--to", "csv"); err == nil {
		t.Fatalf("want error for unknown format")
	}
	if _, _, err := run(t, `{}`, "convert", "--from", "csv"); err == nil {
		t.Fatalf("want error for unknown input type")
	}
}

func TestConvert_ConfigFormat(t *testing.T) {
	cfg := writeFile(t, "datagraph.toml", "format = \"yaml\"\n")
	out, _, err := run(t, `{"a": 1}`, "--config", cfg, "convert")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "a: 1\n" {
		t.Fatalf("want=%q got=%q", "a: 1\n", out)
	}
}

func TestDump_File(t *testing.T) {
	file := writeFile(t, "in.xml", `<news><title>foo</title></news>`)
	out, _, err := run(t, "", "dump", file, "--color", "never")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "Object(record){\n    title = foo\n}\n"
	if out != want {
		t.Fatalf("want=%q got=%q", want, out)
	}
}

func TestDiff(t *testing.T) {
	a := writeFile(t, "a.json", `{"a": 1, "b": "x"}`)
	b := writeFile(t, "b.json", `{"a": 1, "b": "y"}`)
	out, _, err := run(t, "", "diff", a, b, "--color", "never")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, want := range []string{"--- " + a, "+++ " + b, "     a = 1", "-    b = x", "+    b = y"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	if _, _, err := run(t, "", "diff", a, b, "--exit-code"); !errors.Is(err, errDifferent) {
		t.Fatalf("want errDifferent got=%v", err)
	}
	out, _, err = run(t, "", "diff", a, a, "--exit-code")
	if err != nil || out != "" {
		t.Fatalf("want no output got=%q err=%v", out, err)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, logs, err := run(t, `{"a": 1}`, "-v", "convert")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(logs, "writer selected") {
		t.Fatalf("want debug logs got=%q", logs)
	}
}

func TestLoggerFromContext_Default(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Fatalf("want default logger")
	}
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Fatalf("want attached logger")
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")
	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Fatalf("unexpected version info %q %q %q", version, commit, date)
	}
}
