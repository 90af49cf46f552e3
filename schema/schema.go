// Package schema validates and coerces graph values against schemas built
// in Go.
//
// Schemas are assembled with builders:
//
//	s := schema.Object().
//		Field("id", schema.Integer().Min(1)).Required().
//		Field("tags", schema.Array(schema.String())).
//		Unknown(schema.UnknownStrip)
//
// Validate returns a coerced copy of the input: objects keep their input
// order, strings produced by the form and XML readers are converted to the
// numbers and booleans the schema asks for. Findings are reported as
// datagraph.Issues with JSON pointer paths and localized messages.
package schema

import (
	"context"
	"strconv"
	"strings"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/i18n"
	js "github.com/reoring/datagraph/schema/jsonschema"
)

// Schema validates a value and returns its coerced form.
type Schema interface {
	Validate(ctx context.Context, v any) (any, error)
	JSONSchema() (*js.Schema, error)
}

// checker is implemented by every schema of this package. It appends
// findings to st and returns the coerced value.
type checker interface {
	check(ctx context.Context, v any, path string, st *state) any
}

type state struct {
	issues datagraph.Issues
}

func (st *state) add(path, code string, data map[string]string) {
	st.issues = datagraph.AppendIssues(st.issues, datagraph.Issue{
		Path:    path,
		Code:    code,
		Message: i18n.T(code, data),
		Offset:  -1,
		Params:  params(data),
	})
}

func (st *state) stop(ctx context.Context) bool {
	return len(st.issues) > 0 && IsFailFast(ctx)
}

func params(data map[string]string) map[string]any {
	if len(data) == 0 {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

// run validates v with c starting at the document root.
func run(ctx context.Context, c checker, v any) (any, error) {
	st := &state{}
	out := c.check(ctx, v, "/", st)
	if len(st.issues) > 0 {
		return nil, st.issues
	}
	return out, nil
}

// child appends an escaped JSON pointer token to path.
func child(path, token string) string {
	token = strings.NewReplacer("~", "~0", "/", "~1").Replace(token)
	if path == "/" {
		return "/" + token
	}
	return path + "/" + token
}

type contextKey int

const failFastKey contextKey = iota

// WithFailFast stops validation at the first issue.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, failFastKey, enabled)
}

// IsFailFast reports whether fail-fast validation is enabled in ctx.
func IsFailFast(ctx context.Context) bool {
	v, _ := ctx.Value(failFastKey).(bool)
	return v
}

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Keep unknown keys as they are.
)

func itoa(n int) string { return strconv.Itoa(n) }

// Document exports s as a root JSON Schema document.
func Document(s Schema) (*js.Schema, error) {
	out, err := s.JSONSchema()
	if err != nil {
		return nil, err
	}
	out.SchemaURI = js.Draft
	return out, nil
}
