package transformer

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/reoring/datagraph"
)

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// SOAP extracts the first element of the envelope body and maps it like
// XMLArray. An empty body yields an empty object.
type SOAP struct {
	Namespace string
}

func (t *SOAP) Transform(v any) (any, error) {
	doc, err := document(v)
	if err != nil {
		return nil, err
	}
	body := findBody(doc.Root())
	if body == nil {
		return nil, fmt.Errorf("%w: soap: found no SOAP (%s) Body element", datagraph.ErrInvalidData, EnvelopeNamespace)
	}
	for _, c := range body.ChildElements() {
		if t.Namespace != "" && c.NamespaceURI() != t.Namespace {
			continue
		}
		x := &XMLArray{Namespace: t.Namespace}
		return x.object(c), nil
	}
	return datagraph.NewObject(), nil
}

func findBody(el *etree.Element) *etree.Element {
	if el.Tag == "Body" && el.NamespaceURI() == EnvelopeNamespace {
		return el
	}
	for _, c := range el.ChildElements() {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
