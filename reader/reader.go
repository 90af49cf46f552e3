// Package reader turns request bodies into values of the graph. Each reader
// handles a family of content types; Factory picks one by name, content type
// or priority.
package reader

import (
	"errors"

	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/internal/registry"
)

// ErrMalformed wraps syntax errors of the wire format.
var ErrMalformed = errors.New("reader: malformed input")

// Reader decodes raw body bytes. Empty input decodes to nil.
type Reader interface {
	Read(data []byte) (any, error)
	IsContentTypeSupported(mt mediatype.MediaType) bool
}

// MediaTypeReader is implemented by readers that need the parameters of the
// content type, such as the multipart boundary.
type MediaTypeReader interface {
	ReadMediaType(data []byte, mt mediatype.MediaType) (any, error)
}

// ReadAs decodes data with r, passing the content type on when r wants it.
func ReadAs(r Reader, data []byte, mt mediatype.MediaType) (any, error) {
	if mr, ok := r.(MediaTypeReader); ok {
		return mr.ReadMediaType(data, mt)
	}
	return r.Read(data)
}

// Factory holds named readers by priority.
type Factory struct {
	readers registry.Registry[Reader]
}

// NewFactory returns an empty factory.
func NewFactory() *Factory { return &Factory{} }

// Add registers a reader. Higher priorities are preferred.
func (f *Factory) Add(name string, r Reader, priority int) {
	f.readers.Add(name, r, priority)
}

// Default returns the reader with the highest priority among the supported
// names (all readers when none are given).
func (f *Factory) Default(supported ...string) (string, Reader, bool) {
	es := f.readers.Entries(supported...)
	if len(es) == 0 {
		return "", nil, false
	}
	return es[0].Name, es[0].Item, true
}

// ByContentType returns the first reader, by priority, that accepts the
// content type.
func (f *Factory) ByContentType(contentType string, supported ...string) (string, Reader, bool) {
	if contentType == "" {
		return "", nil, false
	}
	mt, err := mediatype.Parse(contentType)
	if err != nil {
		return "", nil, false
	}
	for _, e := range f.readers.Entries(supported...) {
		if e.Item.IsContentTypeSupported(mt) {
			return e.Name, e.Item, true
		}
	}
	return "", nil, false
}

// ByName returns the reader registered under name.
func (f *Factory) ByName(name string) (Reader, bool) {
	e, ok := f.readers.Get(name)
	return e.Item, ok
}

// Names lists the registered names by priority.
func (f *Factory) Names() []string {
	var out []string
	for _, e := range f.readers.Entries() {
		out = append(out, e.Name)
	}
	return out
}
