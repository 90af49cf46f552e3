// Package writer renders graph values in wire formats. Every writer creates
// a fresh visitor per call, so one writer may be reused sequentially.
package writer

import (
	"strings"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/internal/registry"
	"github.com/reoring/datagraph/internal/xmlsink"
)

// Writer renders a value.
type Writer interface {
	IsContentTypeSupported(mt mediatype.MediaType) bool
	ContentType() string
	Write(v any) (string, error)
}

// Factory holds named writers by priority and resolves Accept headers.
type Factory struct {
	writers     registry.Registry[Writer]
	negotiation []negotiationRule
}

type negotiationRule struct {
	accept mediatype.MediaType
	name   string
}

// NewFactory returns an empty factory.
func NewFactory() *Factory { return &Factory{} }

// Add registers a writer. Higher priorities are preferred.
func (f *Factory) Add(name string, w Writer, priority int) {
	f.writers.Add(name, w, priority)
}

// Default returns the writer with the highest priority among the supported
// names (all writers when none are given).
func (f *Factory) Default(supported ...string) (string, Writer, bool) {
	es := f.writers.Entries(supported...)
	if len(es) == 0 {
		return "", nil, false
	}
	return es[0].Name, es[0].Item, true
}

// ByContentType resolves an Accept style list. Media types are tried by
// descending quality; for each, custom negotiation rules are consulted
// before the writers themselves.
func (f *Factory) ByContentType(accept string, supported ...string) (string, Writer, bool) {
	if strings.TrimSpace(accept) == "" {
		return "", nil, false
	}
	types := mediatype.ParseList(accept)
	for _, mt := range types {
		if name, w, ok := f.negotiated(mt, supported); ok {
			return name, w, true
		}
	}
	entries := f.writers.Entries(supported...)
	for _, mt := range types {
		for _, e := range entries {
			if e.Item.IsContentTypeSupported(mt) {
				return e.Name, e.Item, true
			}
		}
	}
	return "", nil, false
}

func (f *Factory) negotiated(mt mediatype.MediaType, supported []string) (string, Writer, bool) {
	for _, rule := range f.negotiation {
		if !rule.accept.Match(mt) {
			continue
		}
		if !allowed(rule.name, supported) {
			continue
		}
		if e, ok := f.writers.Get(rule.name); ok {
			return e.Name, e.Item, true
		}
	}
	return "", nil, false
}

func allowed(name string, supported []string) bool {
	if len(supported) == 0 {
		return true
	}
	for _, s := range supported {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// ByName returns the writer registered under name.
func (f *Factory) ByName(name string) (Writer, bool) {
	e, ok := f.writers.Get(name)
	return e.Item, ok
}

// NameByFormat maps a format such as "json" or "XML" to the registered
// writer name.
func (f *Factory) NameByFormat(format string) (string, bool) {
	e, ok := f.writers.Get(strings.TrimSpace(format))
	return e.Name, ok
}

// SetContentNegotiation routes a content type pattern (such as "text/plain"
// or "image/*") to the named writer ahead of the writers' own checks.
func (f *Factory) SetContentNegotiation(contentType, name string) error {
	mt, err := mediatype.Parse(contentType)
	if err != nil {
		return err
	}
	for i, r := range f.negotiation {
		if r.accept.Name() == mt.Name() {
			f.negotiation[i].name = name
			return nil
		}
	}
	f.negotiation = append(f.negotiation, negotiationRule{accept: mt, name: name})
	return nil
}

// Names lists the registered names by priority.
func (f *Factory) Names() []string {
	var out []string
	for _, e := range f.writers.Entries() {
		out = append(out, e.Name)
	}
	return out
}

// container reveals v and rejects scalars.
func container(v any) (any, error) {
	return datagraph.RequireContainer(v)
}

// xmlDocument runs fn on a fresh indented sink wrapped in an XML declaration.
func xmlDocument(fn func(sink *xmlsink.Writer)) string {
	sink := xmlsink.New()
	sink.StartDocument()
	fn(sink)
	sink.EndDocument()
	return sink.String()
}
