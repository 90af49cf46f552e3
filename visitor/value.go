package visitor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/datetime"
)

// Scalar normalizes a leaf value before it is stored in a rebuilt tree.
// Temporal values become their canonical strings, URLs and Stringers their
// string form, byte slices base64. Nil, booleans, numbers and strings pass
// through unchanged; anything else is formatted with fmt.Sprint.
func Scalar(v any) any {
	switch t := v.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case *url.URL:
		if t == nil {
			return nil
		}
		return t.String()
	case []byte:
		return base64.StdEncoding.EncodeToString(t)
	}
	if s, ok := datetime.Format(v); ok {
		return s
	}
	switch t := v.(type) {
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	return fmt.Sprint(v)
}

// Text renders a leaf value as character data: booleans as true/false, nil
// as the empty string and floats in their shortest decimal form.
func Text(v any) string {
	switch t := Scalar(v).(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}

// TypeOf names the kind of a revealed value as used by the XML type
// attribute. It returns "" for leaves it cannot classify.
func TypeOf(v any) string {
	switch {
	case datagraph.IsObject(v):
		return "object"
	case datagraph.IsArray(v):
		return "array"
	}
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return "integer"
		}
		return "float"
	case *url.URL:
		return "uri"
	}
	return datetime.Kind(v)
}

// JSONType names the JSONx element of a revealed value.
func JSONType(v any) string {
	switch {
	case datagraph.IsObject(v):
		return "object"
	case datagraph.IsArray(v):
		return "array"
	}
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return "number"
	}
	return "string"
}
