package transformer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/reoring/datagraph"
)

// JSONx maps a JSONx document back onto objects. The root element must be
// json:object.
type JSONx struct{}

func (JSONx) Transform(v any) (any, error) {
	doc, err := document(v)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	if root.Tag != "object" {
		return nil, fmt.Errorf("%w: jsonx: root element must be an object", datagraph.ErrInvalidData)
	}
	return jsonxValue(root)
}

func jsonxValue(el *etree.Element) (any, error) {
	text := strings.TrimSpace(el.Text())
	switch el.Tag {
	case "object":
		out := datagraph.NewObject()
		for _, c := range el.ChildElements() {
			name := c.SelectAttrValue("name", "")
			if name == "" {
				continue
			}
			v, err := jsonxValue(c)
			if err != nil {
				return nil, err
			}
			out.Set(name, v)
		}
		return out, nil
	case "array":
		out := []any{}
		for _, c := range el.ChildElements() {
			v, err := jsonxValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case "boolean":
		return text == "true" || text == "1", nil
	case "string":
		return el.Text(), nil
	case "number":
		if !strings.ContainsAny(text, ".eE") {
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				return i, nil
			}
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: jsonx: invalid number %q", datagraph.ErrInvalidData, text)
		}
		return f, nil
	case "null":
		return nil, nil
	}
	return nil, fmt.Errorf("%w: jsonx: invalid element name %q", datagraph.ErrInvalidData, el.Tag)
}
