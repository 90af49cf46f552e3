package writer

import (
	"strings"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/internal/xmlsink"
	"github.com/reoring/datagraph/model"
	"github.com/reoring/datagraph/transformer"
	"github.com/reoring/datagraph/visitor"
)

// SOAP wraps the XML rendering of a value in a SOAP 1.1 envelope. A
// *model.Error becomes a soap:Fault.
type SOAP struct {
	Namespace     string
	requestMethod string
}

// NewSOAP returns a SOAP writer declaring namespace on the body content.
func NewSOAP(namespace string) *SOAP { return &SOAP{Namespace: namespace} }

// SetRequestMethod records the HTTP method the response answers, lower
// cased.
func (w *SOAP) SetRequestMethod(method string) { w.requestMethod = strings.ToLower(method) }

// RequestMethod returns the recorded method.
func (w *SOAP) RequestMethod() string { return w.requestMethod }

func (w *SOAP) Write(v any) (string, error) {
	if e, ok := v.(*model.Error); ok {
		return xmlDocument(func(sink *xmlsink.Writer) {
			startEnvelope(sink)
			sink.StartElement("soap:Fault")
			sink.WriteElement("faultcode", "soap:Server")
			sink.WriteElement("faultstring", e.Message)
			if e.Trace != "" {
				sink.StartElement("detail")
				datagraph.Traverse(e, visitor.NewJSONxVisitor(sink))
				sink.EndElement()
			}
		}), nil
	}
	c, err := container(v)
	if err != nil {
		return "", err
	}
	return xmlDocument(func(sink *xmlsink.Writer) {
		startEnvelope(sink)
		datagraph.Traverse(c, visitor.NewXMLVisitor(sink, visitor.XMLOptions{Namespace: w.Namespace}))
	}), nil
}

func startEnvelope(sink *xmlsink.Writer) {
	sink.StartElementNS("soap", "Envelope", transformer.EnvelopeNamespace)
	sink.StartElement("soap:Body")
}

func (w *SOAP) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "application/soap+xml"
}

func (w *SOAP) ContentType() string { return "text/xml" }
