package writer

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/visitor"
)

// HTML writes nested definition lists.
type HTML struct{}

func (HTML) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	vis := visitor.NewHTMLVisitor()
	datagraph.Traverse(c, vis)
	return vis.Output(), nil
}

func (HTML) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "text/html"
}

func (HTML) ContentType() string { return "text/html" }

// Text writes the indented debug dump.
type Text struct {
	Color bool
}

func (w *Text) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	vis := visitor.NewTextVisitor(visitor.TextOptions{Color: w.Color})
	datagraph.Traverse(c, vis)
	return vis.Output(), nil
}

func (w *Text) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "text/plain"
}

func (w *Text) ContentType() string { return "text/plain" }

// YAML writes YAML keeping entry order.
type YAML struct{}

func (YAML) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	vis := visitor.NewYAMLVisitor()
	datagraph.Traverse(c, vis)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(vis.Document()); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (YAML) IsContentTypeSupported(mt mediatype.MediaType) bool {
	switch mt.Name() {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}

func (YAML) ContentType() string { return "application/yaml" }
