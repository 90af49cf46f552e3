package reader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
)

// Form reads application/x-www-form-urlencoded bodies. Bracketed names
// build nested values: "a[b]=1&a[c][]=2" yields {"a":{"b":"1","c":["2"]}}.
// All leaves are strings.
type Form struct{}

func (Form) Read(data []byte) (any, error) {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return nil, nil
	}
	root := datagraph.NewAssoc()
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("%w: form: %w", ErrMalformed, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("%w: form: %w", ErrMalformed, err)
		}
		if key == "" {
			continue
		}
		insertPath(root, splitFieldName(key), value)
	}
	if root.Len() == 0 {
		return nil, nil
	}
	return root.Objectify(), nil
}

func (Form) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "application/x-www-form-urlencoded"
}

// splitFieldName splits "a[b][]" into ["a", "b", ""]. Names with unbalanced
// brackets are kept whole.
func splitFieldName(name string) []string {
	open := strings.IndexByte(name, '[')
	if open <= 0 {
		return []string{name}
	}
	segs := []string{name[:open]}
	rest := name[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{name}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{name}
		}
		segs = append(segs, rest[1:end])
		rest = rest[end+1:]
	}
	return segs
}

// insertPath stores value under the path, creating nested Assocs on the way.
// An empty segment appends.
func insertPath(a *datagraph.Assoc, path []string, value any) {
	for i, seg := range path {
		last := i == len(path)-1
		if last {
			if seg == "" {
				a.Append(value)
			} else {
				a.Set(seg, value)
			}
			return
		}
		if seg != "" {
			if child, ok := a.Get(seg); ok {
				if ca, ok := child.(*datagraph.Assoc); ok {
					a = ca
					continue
				}
			}
		}
		child := datagraph.NewAssoc()
		if seg == "" {
			a.Append(child)
		} else {
			a.Set(seg, child)
		}
		a = child
	}
}
