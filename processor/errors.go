package processor

import "errors"

var (
	// ErrReaderNotFound means no reader accepted the payload.
	ErrReaderNotFound = errors.New("processor: could not find fitting data reader for content type")
	// ErrWriterNotFound means no writer accepted the payload.
	ErrWriterNotFound = errors.New("processor: could not find fitting data writer")
)

// ParseError wraps failures of reading or transforming a body.
type ParseError struct{ Err error }

func (e *ParseError) Error() string { return "processor: parse: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// ReadError wraps parse and validation failures of Read.
type ReadError struct{ Err error }

func (e *ReadError) Error() string { return "processor: read: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps export and rendering failures of Write.
type WriteError struct{ Err error }

func (e *WriteError) Error() string { return "processor: write: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }
