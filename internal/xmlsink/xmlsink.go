// Package xmlsink is a small streaming XML writer. Elements are written as
// they are opened; empty elements are self-closed and element-only content is
// indented.
package xmlsink

import (
	"encoding/xml"
	"strings"
)

type frame struct {
	name        string
	open        bool // start tag not yet terminated
	hasChildren bool
	hasText     bool
}

// Writer accumulates XML in memory.
type Writer struct {
	buf    strings.Builder
	stack  []frame
	indent string
	wrote  bool
}

// New returns a Writer indenting nested elements with two spaces. An empty
// indent disables pretty printing.
func New() *Writer { return &Writer{indent: "  "} }

// NewCompact returns a Writer without indentation.
func NewCompact() *Writer { return &Writer{} }

// StartDocument writes the XML declaration.
func (w *Writer) StartDocument() {
	w.buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.buf.WriteByte('\n')
}

// StartElement opens an element.
func (w *Writer) StartElement(name string) {
	if n := len(w.stack); n > 0 {
		top := &w.stack[n-1]
		w.terminate(top)
		top.hasChildren = true
		if !top.hasText {
			w.newline(n)
		}
	} else if w.wrote {
		w.newline(0)
	}
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.stack = append(w.stack, frame{name: name, open: true})
	w.wrote = true
}

// StartElementNS opens prefix:name and declares the namespace when uri is
// not empty.
func (w *Writer) StartElementNS(prefix, name, uri string) {
	qn := name
	if prefix != "" {
		qn = prefix + ":" + name
	}
	w.StartElement(qn)
	if uri != "" {
		if prefix == "" {
			w.WriteAttribute("xmlns", uri)
		} else {
			w.WriteAttribute("xmlns:"+prefix, uri)
		}
	}
}

// WriteAttribute adds an attribute to the element just opened. It panics when
// content has already been written to that element.
func (w *Writer) WriteAttribute(name, value string) {
	n := len(w.stack)
	if n == 0 || !w.stack[n-1].open {
		panic("xmlsink: attribute outside of a start tag")
	}
	w.buf.WriteByte(' ')
	w.buf.WriteString(name)
	w.buf.WriteString(`="`)
	escape(&w.buf, value)
	w.buf.WriteByte('"')
}

// Text writes escaped character data into the current element.
func (w *Writer) Text(s string) {
	n := len(w.stack)
	if n == 0 {
		escape(&w.buf, s)
		return
	}
	top := &w.stack[n-1]
	w.terminate(top)
	top.hasText = true
	escape(&w.buf, s)
}

// EndElement closes the current element.
func (w *Writer) EndElement() {
	n := len(w.stack)
	if n == 0 {
		panic("xmlsink: EndElement without open element")
	}
	f := w.stack[n-1]
	w.stack = w.stack[:n-1]
	switch {
	case f.open:
		w.buf.WriteString("/>")
		return
	case f.hasChildren && !f.hasText:
		w.newline(n - 1)
	}
	w.buf.WriteString("</")
	w.buf.WriteString(f.name)
	w.buf.WriteByte('>')
}

// WriteElement writes a complete element with text content.
func (w *Writer) WriteElement(name, text string) {
	w.StartElement(name)
	if text != "" {
		w.Text(text)
	}
	w.EndElement()
}

// EndDocument closes every open element and terminates the output with a
// newline.
func (w *Writer) EndDocument() {
	for len(w.stack) > 0 {
		w.EndElement()
	}
	w.buf.WriteByte('\n')
}

// Depth returns the number of open elements.
func (w *Writer) Depth() int { return len(w.stack) }

// String returns the XML written so far.
func (w *Writer) String() string { return w.buf.String() }

func (w *Writer) terminate(f *frame) {
	if f.open {
		w.buf.WriteByte('>')
		f.open = false
	}
}

func (w *Writer) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.indent)
	}
}

func escape(b *strings.Builder, s string) {
	// strings.Builder never fails to write.
	_ = xml.EscapeText(b, []byte(s))
}
