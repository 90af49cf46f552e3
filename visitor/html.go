package visitor

import (
	"html"
	"strings"

	"github.com/reoring/datagraph"
)

// HTMLVisitor renders the traversal as nested definition and bullet lists.
type HTMLVisitor struct {
	buf   strings.Builder
	names names
}

// NewHTMLVisitor returns an HTMLVisitor.
func NewHTMLVisitor() *HTMLVisitor { return &HTMLVisitor{} }

// Output returns the markup written so far.
func (v *HTMLVisitor) Output() string { return v.buf.String() }

func (v *HTMLVisitor) VisitObjectStart(name string) {
	name = v.names.objectName(name)
	v.names.depth++
	v.buf.WriteString(`<dl data-name="`)
	v.buf.WriteString(html.EscapeString(name))
	v.buf.WriteString(`">`)
}

func (v *HTMLVisitor) VisitObjectEnd() {
	v.names.depth--
	v.buf.WriteString("</dl>")
}

func (v *HTMLVisitor) VisitObjectValueStart(key string, _ any) {
	v.names.entry(key)
	v.buf.WriteString("<dt>")
	v.buf.WriteString(html.EscapeString(key))
	v.buf.WriteString("</dt><dd>")
}

func (v *HTMLVisitor) VisitObjectValueEnd() { v.buf.WriteString("</dd>") }

func (v *HTMLVisitor) VisitArrayStart() {
	v.names.depth++
	v.buf.WriteString("<ul>")
}

func (v *HTMLVisitor) VisitArrayEnd() {
	v.names.depth--
	v.buf.WriteString("</ul>")
}

func (v *HTMLVisitor) VisitArrayValueStart(any) { v.buf.WriteString("<li>") }
func (v *HTMLVisitor) VisitArrayValueEnd()      { v.buf.WriteString("</li>") }

func (v *HTMLVisitor) VisitValue(value any) {
	v.buf.WriteString(html.EscapeString(Text(value)))
}

var _ datagraph.Visitor = (*HTMLVisitor)(nil)
