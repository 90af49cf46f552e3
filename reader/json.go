package reader

import (
	"fmt"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
)

// JSON reads JSON bodies into ordered objects. The zero value accepts
// duplicate keys (last one wins) and applies no limits.
type JSON struct {
	Parse datagraph.ParseOpt
}

// NewJSON returns a JSON reader rejecting duplicate keys.
func NewJSON() *JSON { return &JSON{Parse: datagraph.DefaultParseOpt()} }

func (r *JSON) Read(data []byte) (any, error) {
	v, err := datagraph.ParseJSON(data, r.Parse)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMalformed, err)
	}
	return v, nil
}

func (r *JSON) IsContentTypeSupported(mt mediatype.MediaType) bool {
	switch {
	case mt.Type == "application" && mt.Subtype == "json",
		mt.Type == "text" && mt.Subtype == "json":
		return true
	}
	return mt.Suffix() == "json"
}
