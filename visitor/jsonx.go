package visitor

import (
	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/xmlsink"
)

// JSONxNamespace is the namespace of JSONx documents.
const JSONxNamespace = "http://www.ibm.com/xmlns/prod/2009/jsonx"

const jsonxPrefix = "json"

// JSONxVisitor writes the traversal as a JSONx document. The namespace is
// declared once on the outermost container.
type JSONxVisitor struct {
	sink  *xmlsink.Writer
	depth int
}

// NewJSONxVisitor returns a visitor writing to sink.
func NewJSONxVisitor(sink *xmlsink.Writer) *JSONxVisitor {
	return &JSONxVisitor{sink: sink}
}

func (v *JSONxVisitor) VisitObjectStart(string) { v.open("object") }
func (v *JSONxVisitor) VisitObjectEnd()         { v.close() }
func (v *JSONxVisitor) VisitArrayStart()        { v.open("array") }
func (v *JSONxVisitor) VisitArrayEnd()          { v.close() }

func (v *JSONxVisitor) VisitObjectValueStart(key string, value any) {
	v.sink.StartElementNS(jsonxPrefix, JSONType(value), "")
	v.sink.WriteAttribute("name", key)
}

func (v *JSONxVisitor) VisitObjectValueEnd() { v.sink.EndElement() }

func (v *JSONxVisitor) VisitArrayValueStart(value any) {
	v.sink.StartElementNS(jsonxPrefix, JSONType(value), "")
}

func (v *JSONxVisitor) VisitArrayValueEnd() { v.sink.EndElement() }

func (v *JSONxVisitor) VisitValue(value any) {
	if v.depth == 0 || value == nil {
		return
	}
	v.sink.Text(Text(value))
}

func (v *JSONxVisitor) open(kind string) {
	if v.depth == 0 {
		v.sink.StartElementNS(jsonxPrefix, kind, JSONxNamespace)
	}
	v.depth++
}

func (v *JSONxVisitor) close() {
	v.depth--
	if v.depth == 0 {
		v.sink.EndElement()
	}
}

var _ datagraph.Visitor = (*JSONxVisitor)(nil)
