// Package transformer converts reader output into graph values and applies
// value-to-value rewrites such as JSON patches.
package transformer

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
)

// Transformer rewrites a value.
type Transformer interface {
	Transform(v any) (any, error)
}

// Callback adapts a function to Transformer.
type Callback func(v any) (any, error)

func (f Callback) Transform(v any) (any, error) { return f(v) }

// Composite runs transformers in order, feeding each the previous result.
type Composite []Transformer

func (c Composite) Transform(v any) (any, error) {
	var err error
	for _, t := range c {
		if v, err = t.Transform(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Default returns the transformer implied by a content type, or nil when the
// reader output can be used as it is.
func Default(mt mediatype.MediaType) Transformer {
	switch {
	case mt.Subtype == "jsonx" || mt.Subtype == "jsonx+xml":
		return &JSONx{}
	case mt.Subtype == "soap+xml":
		return &SOAP{}
	case mt.Subtype == "xml" || mt.Suffix() == "xml":
		return &XMLArray{}
	}
	return nil
}

func document(v any) (*etree.Document, error) {
	doc, ok := v.(*etree.Document)
	if !ok || doc == nil || doc.Root() == nil {
		return nil, fmt.Errorf("%w: transformer: want an XML document, got %T", datagraph.ErrInvalidData, v)
	}
	return doc, nil
}
