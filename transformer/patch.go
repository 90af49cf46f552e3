package transformer

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	gojson "github.com/goccy/go-json"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/visitor"
)

// JSONPatch applies an RFC 6902 patch document. The value is materialized as
// JSON, patched and decoded again into ordered objects; the patch library
// emits object keys sorted.
type JSONPatch struct {
	patch jsonpatch.Patch
}

// NewJSONPatch decodes the patch document.
func NewJSONPatch(doc []byte) (*JSONPatch, error) {
	p, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: json patch: %w", datagraph.ErrInvalidData, err)
	}
	return &JSONPatch{patch: p}, nil
}

func (t *JSONPatch) Transform(v any) (any, error) {
	doc, err := marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := t.patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("transformer: apply json patch: %w", err)
	}
	return unmarshal(out)
}

// MergePatch applies an RFC 7386 merge patch.
type MergePatch struct {
	Patch []byte
}

func (t *MergePatch) Transform(v any) (any, error) {
	doc, err := marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, t.Patch)
	if err != nil {
		return nil, fmt.Errorf("transformer: apply merge patch: %w", err)
	}
	return unmarshal(out)
}

func marshal(v any) ([]byte, error) {
	tree, err := visitor.ToObject(v)
	if err != nil {
		return nil, err
	}
	return gojson.Marshal(tree)
}

func unmarshal(data []byte) (any, error) {
	return datagraph.ParseJSON(data, datagraph.ParseOpt{})
}
