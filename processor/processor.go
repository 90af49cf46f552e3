// Package processor is the entry point of the pipeline: it reads bodies
// into graph values, validates them against schemas and writes values in the
// negotiated format.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	gojson "github.com/goccy/go-json"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/reader"
	"github.com/reoring/datagraph/schema"
	"github.com/reoring/datagraph/transformer"
	"github.com/reoring/datagraph/visitor"
	"github.com/reoring/datagraph/writer"
)

// Processor selects readers and writers from a Configuration.
type Processor struct {
	config *Configuration
	logger *log.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger logs reader and writer selection at debug level.
func WithLogger(l *log.Logger) Option { return func(p *Processor) { p.logger = l } }

// New returns a processor; a nil config selects DefaultConfiguration("").
func New(config *Configuration, opts ...Option) *Processor {
	if config == nil {
		config = DefaultConfiguration("")
	}
	p := &Processor{config: config}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Configuration returns the factories in use.
func (p *Processor) Configuration() *Configuration { return p.config }

// Parse reads the payload body and applies the payload transformer, or the
// default transformer of its content type.
func (p *Processor) Parse(pl *Payload) (any, error) {
	ct := pl.MediaType()
	name, r, err := p.Reader(ct, pl.RWName, pl.RWSupported...)
	if err != nil {
		return nil, err
	}
	data, err := body(pl.Data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	mt, _ := mediatype.Parse(ct)
	v, err := reader.ReadAs(r, data, mt)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	t := pl.Transformer
	if t == nil {
		t = transformer.Default(mt)
	}
	if t != nil && v != nil {
		p.debug("transforming payload", "reader", name, "transformer", fmt.Sprintf("%T", t))
		if v, err = t.Transform(v); err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	return v, nil
}

// Read parses the payload and validates it against s, returning the coerced
// value.
func (p *Processor) Read(ctx context.Context, s schema.Schema, pl *Payload) (any, error) {
	v, err := p.Parse(pl)
	if err != nil {
		if errors.Is(err, ErrReaderNotFound) {
			return nil, err
		}
		return nil, &ReadError{Err: err}
	}
	out, err := s.Validate(ctx, v)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return out, nil
}

// ReadInto reads the payload and projects the validated value into T
// through JSON.
func ReadInto[T any](ctx context.Context, p *Processor, s schema.Schema, pl *Payload) (T, error) {
	var out T
	v, err := p.Read(ctx, s, pl)
	if err != nil {
		return out, err
	}
	tree, err := visitor.ToObject(v)
	if err != nil {
		return out, &ReadError{Err: err}
	}
	data, err := gojson.Marshal(tree)
	if err != nil {
		return out, &ReadError{Err: err}
	}
	if err := gojson.Unmarshal(data, &out); err != nil {
		return out, &ReadError{Err: err}
	}
	return out, nil
}

// Write exports the payload value and renders it with the writer chosen by
// name, by the payload content type used as an Accept list, or by priority.
func (p *Processor) Write(pl *Payload) (string, error) {
	v, err := p.Transform(pl.Data)
	if err != nil {
		return "", &WriteError{Err: err}
	}
	_, w, err := p.Writer(pl.MediaType(), pl.RWName, pl.RWSupported...)
	if err != nil {
		return "", err
	}
	out, err := w.Write(v)
	if err != nil {
		return "", &WriteError{Err: err}
	}
	return out, nil
}

// Transform exports Go values for traversal: object-like and array-like
// values pass through, structs become records and everything else is
// rejected with datagraph.ErrInvalidData.
func (p *Processor) Transform(v any) (any, error) {
	return datagraph.Export(v)
}

// Reader resolves a reader by name, else by content type, else by priority.
func (p *Processor) Reader(contentType, name string, supported ...string) (string, reader.Reader, error) {
	f := p.config.Readers
	var (
		r  reader.Reader
		ok bool
	)
	if name != "" {
		r, ok = f.ByName(name)
	} else {
		name, r, ok = f.ByContentType(contentType, supported...)
	}
	if !ok {
		name, r, ok = f.Default(supported...)
	}
	if !ok {
		return "", nil, ErrReaderNotFound
	}
	p.debug("reader selected", "name", name, "content_type", contentType)
	return name, r, nil
}

// Writer resolves a writer by name, else by Accept list, else by priority.
func (p *Processor) Writer(accept, name string, supported ...string) (string, writer.Writer, error) {
	f := p.config.Writers
	var (
		w  writer.Writer
		ok bool
	)
	if name != "" {
		w, ok = f.ByName(name)
	} else {
		name, w, ok = f.ByContentType(accept, supported...)
	}
	if !ok {
		name, w, ok = f.Default(supported...)
	}
	if !ok {
		return "", nil, ErrWriterNotFound
	}
	p.debug("writer selected", "name", name, "accept", accept)
	return name, w, nil
}

func (p *Processor) debug(msg string, kv ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, kv...)
	}
}

func body(data any) ([]byte, error) {
	switch t := data.(type) {
	case nil:
		return nil, nil
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	case io.Reader:
		return io.ReadAll(t)
	}
	return nil, datagraph.InvalidDataf("payload body must be []byte, string or io.Reader, got %T", data)
}
