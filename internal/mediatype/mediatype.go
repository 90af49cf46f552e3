// Package mediatype parses content types and Accept header lists.
package mediatype

import (
	"errors"
	"fmt"
	"mime"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalid is returned for strings that are not media types.
var ErrInvalid = errors.New("mediatype: invalid media type")

// MediaType is a parsed type/subtype pair with parameters. Type and Subtype
// are lower case; "*" is a wildcard.
type MediaType struct {
	Type    string
	Subtype string
	Params  map[string]string
	Quality float64
}

// Parse parses a single media type such as "application/json; charset=utf-8".
func Parse(s string) (MediaType, error) {
	full, params, err := mime.ParseMediaType(strings.TrimSpace(s))
	if err != nil {
		return MediaType{}, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	typ, sub, ok := strings.Cut(full, "/")
	if !ok || typ == "" || sub == "" {
		return MediaType{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	mt := MediaType{Type: typ, Subtype: sub, Params: params, Quality: 1}
	if q, ok := params["q"]; ok {
		if f, err := strconv.ParseFloat(q, 64); err == nil && f >= 0 && f <= 1 {
			mt.Quality = f
		}
		delete(params, "q")
	}
	return mt, nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) MediaType {
	mt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mt
}

// ParseList parses an Accept style list and orders it by descending
// quality. Entries that do not parse are skipped; equal qualities keep
// their order.
func ParseList(s string) []MediaType {
	var out []MediaType
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		mt, err := Parse(part)
		if err != nil {
			continue
		}
		out = append(out, mt)
	}
	slices.SortStableFunc(out, func(a, b MediaType) int {
		switch {
		case a.Quality > b.Quality:
			return -1
		case a.Quality < b.Quality:
			return 1
		}
		return 0
	})
	return out
}

// Name returns "type/subtype".
func (m MediaType) Name() string { return m.Type + "/" + m.Subtype }

// Suffix returns the structured syntax suffix ("json" for
// "application/hal+json"), or "".
func (m MediaType) Suffix() string {
	if i := strings.LastIndexByte(m.Subtype, '+'); i >= 0 {
		return m.Subtype[i+1:]
	}
	return ""
}

// Param returns a parameter value.
func (m MediaType) Param(name string) string { return m.Params[strings.ToLower(name)] }

// Match reports whether m and other name compatible types, honouring
// wildcards on either side.
func (m MediaType) Match(other MediaType) bool {
	return matchPart(m.Type, other.Type) && matchPart(m.Subtype, other.Subtype)
}

func matchPart(a, b string) bool { return a == "*" || b == "*" || a == b }

// String formats the media type with its parameters in sorted order.
func (m MediaType) String() string {
	params := make(map[string]string, len(m.Params))
	for k, v := range m.Params {
		params[k] = v
	}
	return mime.FormatMediaType(m.Name(), params)
}
