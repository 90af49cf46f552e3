package processor

import (
	"github.com/reoring/datagraph/reader"
	"github.com/reoring/datagraph/writer"
)

// DefaultNamespace is the SOAP body namespace used when none is configured.
const DefaultNamespace = "http://phpsx.org/2014/data"

// Reader and writer names registered by DefaultConfiguration.
const (
	JSON      = "JSON"
	Form      = "Form"
	Multipart = "Multipart"
	XML       = "XML"
	Atom      = "Atom"
	JSONP     = "JSONP"
	JSONx     = "JSONx"
	SOAP      = "SOAP"
	RSS       = "RSS"
	HTML      = "HTML"
	Text      = "Text"
	YAML      = "YAML"
)

// Configuration bundles the factories a Processor selects from.
type Configuration struct {
	Namespace string
	Readers   *reader.Factory
	Writers   *writer.Factory
}

// DefaultConfiguration returns the stock readers and writers. namespace is
// declared on SOAP bodies; empty selects DefaultNamespace.
func DefaultConfiguration(namespace string) *Configuration {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Configuration{
		Namespace: namespace,
		Readers:   DefaultReaders(),
		Writers:   DefaultWriters(namespace),
	}
}

// DefaultReaders registers JSON, form, multipart and XML readers.
func DefaultReaders() *reader.Factory {
	f := reader.NewFactory()
	f.Add(JSON, reader.NewJSON(), 16)
	f.Add(Form, reader.Form{}, 8)
	f.Add(Multipart, &reader.Multipart{}, 1)
	f.Add(XML, reader.XML{}, 0)
	return f
}

// DefaultWriters registers every writer. The feed and debug writers sit
// below zero so they are only chosen by name or content type.
func DefaultWriters(namespace string) *writer.Factory {
	f := writer.NewFactory()
	f.Add(JSON, writer.JSON{}, 48)
	f.Add(Atom, &writer.Atom{}, 32)
	f.Add(Form, writer.Form{}, 24)
	f.Add(JSONP, writer.NewJSONP(""), 16)
	f.Add(JSONx, writer.JSONx{}, 15)
	f.Add(SOAP, writer.NewSOAP(namespace), 8)
	f.Add(XML, &writer.XML{}, 0)
	f.Add(RSS, writer.RSS{}, -8)
	f.Add(HTML, writer.HTML{}, -16)
	f.Add(Text, &writer.Text{}, -24)
	f.Add(YAML, writer.YAML{}, -32)
	return f
}
