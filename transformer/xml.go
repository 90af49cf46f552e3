package transformer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/reoring/datagraph"
)

// RawXML is an element the XML transformers could not map, serialized as
// it appeared in the input.
type RawXML string

func (r RawXML) String() string { return string(r) }

// XMLArray maps an XML document onto objects: child elements become
// entries named after their local name, repeated names become arrays and
// leaf text is typed by its look (numbers, true/false). With a Namespace
// only elements in that namespace are considered; an element whose children
// are all foreign is kept as RawXML.
type XMLArray struct {
	Namespace string
}

func (t *XMLArray) Transform(v any) (any, error) {
	doc, err := document(v)
	if err != nil {
		return nil, err
	}
	return t.object(doc.Root()), nil
}

func (t *XMLArray) object(el *etree.Element) *datagraph.Object {
	out := datagraph.NewObject()
	for _, child := range el.ChildElements() {
		if t.Namespace != "" && child.NamespaceURI() != t.Namespace {
			continue
		}
		var value any
		switch {
		case hasChildElements(child, t.Namespace):
			value = t.object(child)
		case t.Namespace != "" && hasChildElements(child, ""):
			value = rawXML(child)
		default:
			value = parseValue(child.Text())
		}
		name := child.Tag
		prev, exists := out.Get(name)
		if !exists {
			out.Set(name, value)
			continue
		}
		list, ok := prev.([]any)
		if !ok {
			list = []any{prev}
		}
		out.Set(name, append(list, value))
	}
	return out
}

func hasChildElements(el *etree.Element, ns string) bool {
	for _, c := range el.ChildElements() {
		if ns == "" || c.NamespaceURI() == ns {
			return true
		}
	}
	return false
}

func rawXML(el *etree.Element) RawXML {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	s, _ := doc.WriteToString()
	return RawXML(s)
}

var numeric = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// parseValue types leaf text: numbers become int64 or float64 (float when
// the text has a decimal point), "true"/"false" booleans. Numbers are
// checked first, so "1" is an integer.
func parseValue(s string) any {
	if numeric.MatchString(s) {
		trimmed := strings.TrimSpace(s)
		if !strings.ContainsAny(trimmed, ".eE") {
			if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
				return i
			}
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
