package writer

import (
	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/internal/xmlsink"
	"github.com/reoring/datagraph/visitor"
)

// XML writes typed XML documents.
type XML struct {
	Namespace string
	RepeatKey bool
}

func (w *XML) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	return xmlDocument(func(sink *xmlsink.Writer) {
		datagraph.Traverse(c, visitor.NewXMLVisitor(sink, w.options()))
	}), nil
}

func (w *XML) options() visitor.XMLOptions {
	return visitor.XMLOptions{Namespace: w.Namespace, RepeatKey: w.RepeatKey}
}

func (w *XML) IsContentTypeSupported(mt mediatype.MediaType) bool {
	switch mt.Name() {
	case "application/xml", "text/xml":
		return true
	}
	return false
}

func (w *XML) ContentType() string { return "application/xml" }

// JSONx writes JSONx documents.
type JSONx struct{}

func (JSONx) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	return xmlDocument(func(sink *xmlsink.Writer) {
		datagraph.Traverse(c, visitor.NewJSONxVisitor(sink))
	}), nil
}

func (JSONx) IsContentTypeSupported(mt mediatype.MediaType) bool {
	switch mt.Name() {
	case "application/jsonx", "application/jsonx+xml":
		return true
	}
	return false
}

func (JSONx) ContentType() string { return "application/jsonx+xml" }
