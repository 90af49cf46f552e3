// Package upload holds the parts of a multipart/form-data body. Files are
// kept in memory and treated as opaque leaves by the value graph.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/reoring/datagraph"
)

// ErrNoFile is returned when a field does not hold an uploaded file.
var ErrNoFile = errors.New("upload: no file was uploaded")

// File is an uploaded file.
type File struct {
	Field       string
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Open returns a reader over the file content.
func (f *File) Open() io.Reader { return bytes.NewReader(f.Data) }

// SaveTo writes the content to path.
func (f *File) SaveTo(path string) error {
	if f == nil || f.Name == "" {
		return ErrNoFile
	}
	if err := os.WriteFile(path, f.Data, 0o600); err != nil {
		return fmt.Errorf("upload: save %s: %w", f.Name, err)
	}
	return nil
}

// String returns the client supplied file name.
func (f *File) String() string { return f.Name }

// Body is an ordered set of named parts; a part is either a *File or a
// form value.
type Body struct {
	parts *datagraph.Object
}

// NewBody returns an empty body.
func NewBody() *Body { return &Body{parts: orderedmap.New[string, any]()} }

// AddPart sets a part, replacing an earlier part with the same name.
func (b *Body) AddPart(name string, value any) { b.parts.Set(name, value) }

// Part returns the named part or nil.
func (b *Body) Part(name string) any {
	v, _ := b.parts.Get(name)
	return v
}

// IsFile reports whether the named part is a file.
func (b *Body) IsFile(name string) bool {
	_, ok := b.Part(name).(*File)
	return ok
}

// File returns the named file part.
func (b *Body) File(name string) (*File, error) {
	if f, ok := b.Part(name).(*File); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w for field %s", ErrNoFile, name)
}

// HasFile reports whether any part is a file.
func (b *Body) HasFile() bool {
	for p := b.parts.Oldest(); p != nil; p = p.Next() {
		if _, ok := p.Value.(*File); ok {
			return true
		}
	}
	return false
}

// Values returns the parts that are not files.
func (b *Body) Values() *datagraph.Object {
	out := orderedmap.New[string, any]()
	for p := b.parts.Oldest(); p != nil; p = p.Next() {
		if _, ok := p.Value.(*File); !ok {
			out.Set(p.Key, p.Value)
		}
	}
	return out
}

// Serialize exposes every part, files included, to the traverser.
func (b *Body) Serialize() any { return b.parts }
