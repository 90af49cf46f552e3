package writer

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/visitor"
)

// Form writes application/x-www-form-urlencoded output. Nested values use
// bracketed names (a%5Bb%5D=c), booleans are written as 1 and 0 and null
// entries are left out.
type Form struct{}

func (Form) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	vis := visitor.NewObjectVisitor()
	datagraph.Traverse(c, vis)
	tree, err := vis.Value()
	if err != nil {
		return "", err
	}
	var pairs []string
	buildQuery(&pairs, "", tree)
	return strings.Join(pairs, "&"), nil
}

func (Form) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "application/x-www-form-urlencoded"
}

func (Form) ContentType() string { return "application/x-www-form-urlencoded" }

func buildQuery(pairs *[]string, prefix string, v any) {
	name := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "[" + k + "]"
	}
	switch t := v.(type) {
	case *datagraph.Object:
		for p := t.Oldest(); p != nil; p = p.Next() {
			buildQuery(pairs, name(p.Key), p.Value)
		}
	case []any:
		for i, e := range t {
			buildQuery(pairs, name(strconv.Itoa(i)), e)
		}
	case nil:
	case bool:
		value := "0"
		if t {
			value = "1"
		}
		*pairs = append(*pairs, url.QueryEscape(prefix)+"="+value)
	default:
		*pairs = append(*pairs, url.QueryEscape(prefix)+"="+url.QueryEscape(visitor.Text(t)))
	}
}
