// Package accessor reads values out of a graph by JSON pointer and runs them
// through filters.
package accessor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/visitor"
)

// ErrInvalidValue is wrapped by every filter rejection.
var ErrInvalidValue = errors.New("accessor: invalid value")

// Filter checks or converts the value found at path.
type Filter interface {
	Apply(path string, v any) (any, error)
}

// Get resolves path (a JSON pointer, leading slash optional) in source and
// passes the value through filters in order. Missing keys, out of range
// indexes and paths into scalars resolve to nil.
func Get(source any, path string, filters ...Filter) (any, error) {
	path = "/" + strings.TrimLeft(path, "/")
	v := resolve(source, path)
	for _, f := range filters {
		out, err := f.Apply(path, v)
		if err != nil {
			return nil, err
		}
		v = out
	}
	return v, nil
}

func resolve(v any, path string) any {
	if path == "/" {
		return v
	}
	for _, token := range strings.Split(path[1:], "/") {
		token = strings.NewReplacer("~1", "/", "~0", "~").Replace(token)
		var ok bool
		if v, ok = step(v, token); !ok {
			return nil
		}
	}
	return v
}

func step(v any, token string) (any, bool) {
	if _, props, ok := datagraph.Entries(v); ok {
		for _, p := range props {
			if p.Key == token {
				return p.Value, true
			}
		}
		return nil, false
	}
	if els, ok := datagraph.Elements(v); ok {
		i, err := strconv.Atoi(token)
		if err != nil || i < 0 || i >= len(els) {
			return nil, false
		}
		return els[i], true
	}
	if v == nil {
		return nil, false
	}
	// Plain Go structs are walked through their exported record.
	rec, err := datagraph.Export(v)
	if err != nil || !datagraph.IsObject(rec) {
		return nil, false
	}
	return step(rec, token)
}

// Func adapts a closure: false rejects the value, true keeps it and any
// other result replaces it.
type Func func(v any) any

func (f Func) Apply(path string, v any) (any, error) { return verdict(path, v, f(v)) }

func verdict(path string, v, result any) (any, error) {
	switch result {
	case false:
		return nil, fmt.Errorf("%w: %s contains an invalid value", ErrInvalidValue, path)
	case true:
		return v, nil
	}
	return result, nil
}

// Length requires strings (in runes) or arrays to have between Min and Max
// entries. Numbers are compared by value. Nil passes.
type Length struct {
	Min, Max int
}

func (l Length) Apply(path string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	n, ok := measure(v)
	if !ok || n < float64(l.Min) || n > float64(l.Max) {
		return nil, fmt.Errorf("%w: %s has an invalid length min %d and max %d signs", ErrInvalidValue, path, l.Min, l.Max)
	}
	return v, nil
}

func measure(v any) (float64, bool) {
	if els, ok := datagraph.Elements(v); ok {
		return float64(len(els)), true
	}
	switch t := visitor.Scalar(v).(type) {
	case string:
		return float64(utf8.RuneCountInString(t)), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// Expr evaluates an expr-lang expression with the value bound to "value".
// Results follow the same rules as Func.
type Expr struct {
	source  string
	program *vm.Program
}

// NewExpr compiles expression.
func NewExpr(expression string) (*Expr, error) {
	p, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("accessor: compile %q: %w", expression, err)
	}
	return &Expr{source: expression, program: p}, nil
}

func (e *Expr) Apply(path string, v any) (any, error) {
	out, err := expr.Run(e.program, map[string]any{"value": plain(v)})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, path, err)
	}
	return verdict(path, v, out)
}

// String returns the expression source.
func (e *Expr) String() string { return e.source }

// plain converts graph values into the maps, slices and numbers expressions
// can index and compare.
func plain(v any) any {
	if datagraph.IsObject(datagraph.Reveal(v)) || datagraph.IsArray(datagraph.Reveal(v)) {
		if m, err := visitor.ToMap(v); err == nil {
			return normalize(m)
		}
	}
	return normalize(v)
}

func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
	}
	return v
}
