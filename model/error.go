package model

import "github.com/reoring/datagraph"

// Error is the document written for failed requests.
type Error struct {
	Success bool
	Title   string
	Message string
	Trace   string
	Context string
}

// NewError builds an Error from err.
func NewError(title string, err error) *Error {
	return &Error{Title: title, Message: err.Error()}
}

func (e *Error) DisplayName() string { return "error" }

func (e *Error) Properties() []datagraph.Property {
	p := props{{Key: "success", Value: e.Success}}
	p.str("title", e.Title)
	p.str("message", e.Message)
	p.str("trace", e.Trace)
	p.str("context", e.Context)
	return p
}

var (
	_ datagraph.Structured = (*Feed)(nil)
	_ datagraph.Structured = (*Entry)(nil)
	_ datagraph.Structured = (*RSS)(nil)
	_ datagraph.Structured = (*Item)(nil)
	_ datagraph.Structured = (*Error)(nil)
)
