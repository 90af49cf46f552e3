package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reoring/datagraph/datetime"
	js "github.com/reoring/datagraph/schema/jsonschema"
)

// StringSchema accepts strings.
type StringSchema struct {
	minLen, maxLen int
	pattern        *regexp.Regexp
}

// String returns a string schema.
func String() *StringSchema { return &StringSchema{minLen: -1, maxLen: -1} }

// MinLength sets the minimum length in runes.
func (s *StringSchema) MinLength(n int) *StringSchema { s.minLen = n; return s }

// MaxLength sets the maximum length in runes.
func (s *StringSchema) MaxLength(n int) *StringSchema { s.maxLen = n; return s }

// Pattern requires the value to match expr. It panics when expr does not
// compile.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	s.pattern = regexp.MustCompile(expr)
	return s
}

func (s *StringSchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, s, v) }

func (s *StringSchema) check(_ context.Context, v any, path string, st *state) any {
	str, ok := v.(string)
	if !ok {
		st.add(path, "invalid_type", map[string]string{"expected": "string"})
		return nil
	}
	n := utf8.RuneCountInString(str)
	if s.minLen >= 0 && n < s.minLen {
		st.add(path, "too_short", map[string]string{"min": strconv.Itoa(s.minLen)})
	}
	if s.maxLen >= 0 && n > s.maxLen {
		st.add(path, "too_long", map[string]string{"max": strconv.Itoa(s.maxLen)})
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		st.add(path, "pattern", map[string]string{"pattern": s.pattern.String()})
	}
	return str
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string"}
	if s.minLen >= 0 {
		out.MinLength = js.Int(s.minLen)
	}
	if s.maxLen >= 0 {
		out.MaxLength = js.Int(s.maxLen)
	}
	if s.pattern != nil {
		out.Pattern = s.pattern.String()
	}
	return out, nil
}

// NumberSchema accepts numbers. Integer schemas produce int64, number
// schemas float64. Numeric strings are coerced.
type NumberSchema struct {
	integer  bool
	min, max *float64
}

// Integer returns a schema for whole numbers.
func Integer() *NumberSchema { return &NumberSchema{integer: true} }

// Number returns a schema for any number.
func Number() *NumberSchema { return &NumberSchema{} }

// Min sets the inclusive minimum.
func (s *NumberSchema) Min(n float64) *NumberSchema { s.min = &n; return s }

// Max sets the inclusive maximum.
func (s *NumberSchema) Max(n float64) *NumberSchema { s.max = &n; return s }

func (s *NumberSchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, s, v) }

func (s *NumberSchema) check(_ context.Context, v any, path string, st *state) any {
	f, ok := toFloat(v)
	expected := "number"
	if s.integer {
		expected = "integer"
	}
	if !ok || (s.integer && f != math.Trunc(f)) {
		st.add(path, "invalid_type", map[string]string{"expected": expected})
		return nil
	}
	if s.min != nil && f < *s.min {
		st.add(path, "too_small", map[string]string{"min": formatBound(*s.min)})
	}
	if s.max != nil && f > *s.max {
		st.add(path, "too_big", map[string]string{"max": formatBound(*s.max)})
	}
	if s.integer {
		if n, ok := toInt(v); ok {
			return n
		}
		return int64(f)
	}
	return f
}

func (s *NumberSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "number", Minimum: s.min, Maximum: s.max}
	if s.integer {
		out.Type = "integer"
	}
	return out, nil
}

func formatBound(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

// toInt converts without going through float64 where possible so large
// integers keep their precision.
func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case int32:
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	}
	return 0, false
}

// BooleanSchema accepts booleans. The strings true/false and 1/0 are coerced.
type BooleanSchema struct{}

// Boolean returns a boolean schema.
func Boolean() BooleanSchema { return BooleanSchema{} }

func (s BooleanSchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, s, v) }

func (BooleanSchema) check(_ context.Context, v any, path string, st *state) any {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
	case int64:
		if t == 0 || t == 1 {
			return t == 1
		}
	}
	st.add(path, "invalid_type", map[string]string{"expected": "boolean"})
	return nil
}

func (BooleanSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// AnySchema accepts every value unchanged.
type AnySchema struct{}

// Any returns a schema accepting everything.
func Any() AnySchema { return AnySchema{} }

func (s AnySchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, s, v) }

func (AnySchema) check(_ context.Context, v any, _ string, _ *state) any { return v }

func (AnySchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

// EnumSchema accepts one of a fixed set of values. Values are compared by
// their text form so "1" from a form matches 1.
type EnumSchema struct {
	values []any
}

// Enum returns a schema accepting exactly the given values.
func Enum(values ...any) *EnumSchema { return &EnumSchema{values: values} }

func (s *EnumSchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, s, v) }

func (s *EnumSchema) check(_ context.Context, v any, path string, st *state) any {
	for _, allowed := range s.values {
		if fmt.Sprint(allowed) == fmt.Sprint(v) {
			return allowed
		}
	}
	parts := make([]string, len(s.values))
	for i, a := range s.values {
		parts[i] = fmt.Sprint(a)
	}
	st.add(path, "invalid_enum", map[string]string{"allowed": strings.Join(parts, ", ")})
	return nil
}

func (s *EnumSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Enum: append([]any(nil), s.values...)}, nil
}

// FormatSchema accepts strings in a well-known format and returns the
// parsed value.
type FormatSchema struct {
	format string
	parse  func(string) (any, error)
}

// DateTime accepts RFC 3339 date-times and returns time.Time.
func DateTime() *FormatSchema {
	return &FormatSchema{format: "date-time", parse: func(s string) (any, error) { return datetime.ParseDateTime(s) }}
}

// Date accepts YYYY-MM-DD and returns datetime.Date.
func Date() *FormatSchema {
	return &FormatSchema{format: "date", parse: func(s string) (any, error) { return datetime.ParseDate(s) }}
}

// Duration accepts ISO 8601 periods and returns datetime.Period.
func Duration() *FormatSchema {
	return &FormatSchema{format: "duration", parse: func(s string) (any, error) { return datetime.ParsePeriod(s) }}
}

// URI accepts absolute URIs and returns *url.URL.
func URI() *FormatSchema {
	return &FormatSchema{format: "uri", parse: func(s string) (any, error) {
		u, err := url.Parse(s)
		if err != nil {
			return nil, err
		}
		if !u.IsAbs() {
			return nil, fmt.Errorf("schema: %q is not absolute", s)
		}
		return u, nil
	}}
}

func (s *FormatSchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, s, v) }

func (s *FormatSchema) check(_ context.Context, v any, path string, st *state) any {
	if t, ok := v.(time.Time); ok && s.format == "date-time" {
		return t
	}
	str, ok := v.(string)
	if !ok {
		st.add(path, "invalid_type", map[string]string{"expected": "string"})
		return nil
	}
	out, err := s.parse(str)
	if err != nil {
		st.add(path, "invalid_format", map[string]string{"format": s.format})
		return nil
	}
	return out
}

func (s *FormatSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: s.format}, nil
}
