package processor

import "github.com/reoring/datagraph/transformer"

// DefaultContentType is assumed for payloads without a content type.
const DefaultContentType = "application/json"

// Payload is a body on its way in or out. For Parse, Data holds the raw
// body ([]byte, string or io.Reader) and ContentType its media type; for
// Write, Data holds the value and ContentType the Accept header.
type Payload struct {
	Data        any
	ContentType string
	// Transformer replaces the default transformer of the content type.
	Transformer transformer.Transformer
	// RWName selects a reader or writer by name.
	RWName string
	// RWSupported restricts selection to the named readers or writers.
	RWSupported []string
}

// NewPayload returns a payload for data of the given content type.
func NewPayload(data any, contentType string) *Payload {
	return &Payload{Data: data, ContentType: contentType}
}

func JSONPayload(data any) *Payload { return NewPayload(data, "application/json") }
func XMLPayload(data any) *Payload  { return NewPayload(data, "application/xml") }
func FormPayload(data any) *Payload {
	return NewPayload(data, "application/x-www-form-urlencoded")
}

// MediaType returns ContentType, DefaultContentType when empty.
func (p *Payload) MediaType() string {
	if p.ContentType == "" {
		return DefaultContentType
	}
	return p.ContentType
}
