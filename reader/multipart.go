package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/upload"
)

// Multipart reads multipart/form-data bodies. When at least one file was
// uploaded the result is an *upload.Body holding files and values; otherwise
// the form values are returned like the Form reader would (nil when there
// are none).
type Multipart struct {
	// Boundary is used when Read is called without a content type. When
	// empty, the boundary is taken from the first delimiter line.
	Boundary string
}

func (r *Multipart) Read(data []byte) (any, error) {
	boundary := r.Boundary
	if boundary == "" {
		boundary = sniffBoundary(data)
	}
	return r.read(data, boundary)
}

// ReadMediaType reads with the boundary parameter of mt.
func (r *Multipart) ReadMediaType(data []byte, mt mediatype.MediaType) (any, error) {
	if b := mt.Param("boundary"); b != "" {
		return r.read(data, b)
	}
	return r.Read(data)
}

func (r *Multipart) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "multipart/form-data"
}

func (r *Multipart) read(data []byte, boundary string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if boundary == "" {
		return nil, fmt.Errorf("%w: multipart: missing boundary", ErrMalformed)
	}
	body := upload.NewBody()
	values := datagraph.NewAssoc()
	mr := multipart.NewReader(bytes.NewReader(data), boundary)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: multipart: %w", ErrMalformed, err)
		}
		content, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("%w: multipart: %w", ErrMalformed, err)
		}
		name := part.FormName()
		if name == "" {
			continue
		}
		if fn := part.FileName(); fn != "" {
			body.AddPart(name, &upload.File{
				Field:       name,
				Name:        fn,
				ContentType: part.Header.Get("Content-Type"),
				Size:        int64(len(content)),
				Data:        content,
			})
			continue
		}
		insertPath(values, splitFieldName(name), string(content))
	}
	if !body.HasFile() {
		if values.Len() == 0 {
			return nil, nil
		}
		return values.Objectify(), nil
	}
	if obj, ok := values.Objectify().(*datagraph.Object); ok {
		for p := obj.Oldest(); p != nil; p = p.Next() {
			body.AddPart(p.Key, p.Value)
		}
	}
	return body, nil
}

// sniffBoundary returns the boundary of the first "--boundary" line.
func sniffBoundary(data []byte) string {
	line, _, _ := bytes.Cut(bytes.TrimLeft(data, "\r\n"), []byte("\n"))
	line = bytes.TrimRight(line, "\r")
	if !bytes.HasPrefix(line, []byte("--")) {
		return ""
	}
	return string(line[2:])
}
