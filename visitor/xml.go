package visitor

import (
	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/xmlsink"
)

// XMLOptions configures XMLVisitor.
type XMLOptions struct {
	// Namespace is declared as the default namespace of the root element.
	Namespace string
	// RepeatKey writes arrays under object entries by repeating the entry
	// element once per item instead of nesting entry elements in a
	// type="array" element. Empty arrays leave no trace in this layout.
	RepeatKey bool
}

// XMLVisitor writes the traversal as typed XML elements. The root object
// element is named after the record and carries the namespace; a root array
// is a collection of entry elements. Every element below the root carries a
// type attribute when its kind is known.
type XMLVisitor struct {
	sink *xmlsink.Writer
	opt  XMLOptions

	depth   int
	items   []string // item element name per open array
	opened  []bool   // whether the object entry started an element
	pending string   // element name repeated by the array about to start
}

// NewXMLVisitor returns a visitor writing to sink.
func NewXMLVisitor(sink *xmlsink.Writer, opt XMLOptions) *XMLVisitor {
	return &XMLVisitor{sink: sink, opt: opt}
}

func (v *XMLVisitor) VisitObjectStart(name string) {
	if v.depth == 0 {
		v.sink.StartElement(SanitizeName(name))
		v.sink.WriteAttribute("type", "object")
		if v.opt.Namespace != "" {
			v.sink.WriteAttribute("xmlns", v.opt.Namespace)
		}
	}
	v.depth++
}

func (v *XMLVisitor) VisitObjectEnd() {
	v.depth--
	if v.depth == 0 {
		v.sink.EndElement()
	}
}

func (v *XMLVisitor) VisitObjectValueStart(key string, value any) {
	name := SanitizeName(key)
	if v.opt.RepeatKey && datagraph.IsArray(value) {
		v.pending = name
		v.opened = append(v.opened, false)
		return
	}
	v.startTyped(name, value)
	v.opened = append(v.opened, true)
}

func (v *XMLVisitor) VisitObjectValueEnd() {
	n := len(v.opened)
	if v.opened[n-1] {
		v.sink.EndElement()
	}
	v.opened = v.opened[:n-1]
}

func (v *XMLVisitor) VisitArrayStart() {
	item := "entry"
	switch {
	case v.depth == 0:
		v.sink.StartElement("collection")
		v.sink.WriteAttribute("type", "array")
	case v.pending != "":
		item = v.pending
	}
	v.pending = ""
	v.items = append(v.items, item)
	v.depth++
}

func (v *XMLVisitor) VisitArrayEnd() {
	v.depth--
	v.items = v.items[:len(v.items)-1]
	if v.depth == 0 {
		v.sink.EndElement()
	}
}

func (v *XMLVisitor) VisitArrayValueStart(value any) {
	v.startTyped(v.items[len(v.items)-1], value)
}

func (v *XMLVisitor) VisitArrayValueEnd() { v.sink.EndElement() }

func (v *XMLVisitor) VisitValue(value any) {
	if v.depth == 0 || value == nil {
		return
	}
	v.sink.Text(Text(value))
}

func (v *XMLVisitor) startTyped(name string, value any) {
	v.sink.StartElement(name)
	if t := TypeOf(value); t != "" {
		v.sink.WriteAttribute("type", t)
	}
}

var _ datagraph.Visitor = (*XMLVisitor)(nil)

// SanitizeName turns a key into a legal XML element name: every byte that is
// not an ASCII letter or digit becomes an underscore and a leading digit is
// prefixed with one. The empty key becomes "_".
func SanitizeName(key string) string {
	if key == "" {
		return "_"
	}
	b := make([]byte, 0, len(key)+1)
	if key[0] >= '0' && key[0] <= '9' {
		b = append(b, '_')
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b = append(b, c)
		default:
			b = append(b, '_')
		}
	}
	return string(b)
}
