package reader

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"

	"github.com/reoring/datagraph/internal/mediatype"
)

// XML reads XML bodies into an *etree.Document. Transformers turn the
// document into graph values.
type XML struct{}

func (XML) Read(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: xml: %w", ErrMalformed, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: xml: no root element", ErrMalformed)
	}
	return doc, nil
}

func (XML) IsContentTypeSupported(mt mediatype.MediaType) bool {
	switch mt.Name() {
	case "application/xml", "text/xml":
		return true
	}
	return mt.Suffix() == "xml"
}
