package writer

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/datetime"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/internal/xmlsink"
	"github.com/reoring/datagraph/model"
	"github.com/reoring/datagraph/visitor"
)

// AtomNamespace is the Atom 1.0 namespace.
const AtomNamespace = "http://www.w3.org/2005/Atom"

// Atom writes Atom feed and entry documents. Any other value is written as
// an entry whose content holds the XML rendering of the value.
type Atom struct {
	// NewID generates ids for entries that have none; uuid URNs by default.
	NewID func() string
}

func (w *Atom) Write(v any) (string, error) {
	switch t := v.(type) {
	case *model.Feed:
		return xmlDocument(func(sink *xmlsink.Writer) {
			sink.StartElement("feed")
			sink.WriteAttribute("xmlns", AtomNamespace)
			w.feed(sink, t)
			for _, e := range t.Entries {
				sink.StartElement("entry")
				w.entry(sink, e)
				sink.EndElement()
			}
		}), nil
	case *model.Entry:
		return xmlDocument(func(sink *xmlsink.Writer) {
			sink.StartElement("entry")
			sink.WriteAttribute("xmlns", AtomNamespace)
			w.entry(sink, t)
		}), nil
	}
	c, err := container(v)
	if err != nil {
		return "", err
	}
	return xmlDocument(func(sink *xmlsink.Writer) {
		sink.StartElement("entry")
		sink.WriteAttribute("xmlns", AtomNamespace)
		sink.WriteElement("id", w.id())
		sink.StartElement("content")
		sink.WriteAttribute("type", "application/xml")
		datagraph.Traverse(c, visitor.NewXMLVisitor(sink, visitor.XMLOptions{}))
	}), nil
}

func (w *Atom) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "application/atom+xml"
}

func (w *Atom) ContentType() string { return "application/atom+xml" }

func (w *Atom) id() string {
	if w.NewID != nil {
		return w.NewID()
	}
	return "urn:uuid:" + uuid.NewString()
}

func (w *Atom) feed(sink *xmlsink.Writer, f *model.Feed) {
	writeText(sink, "title", f.Title)
	writeText(sink, "id", f.ID)
	writeTime(sink, "updated", f.Updated)
	if f.Subtitle != nil {
		writeTextConstruct(sink, "subtitle", f.Subtitle)
	}
	writeLinks(sink, f.Links)
	writeText(sink, "rights", f.Rights)
	if g := f.Generator; g != nil {
		sink.StartElement("generator")
		writeAttr(sink, "uri", g.URI)
		writeAttr(sink, "version", g.Version)
		if g.Text != "" {
			sink.Text(g.Text)
		}
		sink.EndElement()
	}
	writePeople(sink, "author", f.Authors)
	writeCategories(sink, f.Categories)
	writePeople(sink, "contributor", f.Contributors)
	writeText(sink, "icon", f.Icon)
	writeText(sink, "logo", f.Logo)
}

func (w *Atom) entry(sink *xmlsink.Writer, e *model.Entry) {
	id := e.ID
	if id == "" {
		id = w.id()
	}
	sink.WriteElement("id", id)
	writeText(sink, "title", e.Title)
	writeTime(sink, "updated", e.Updated)
	writeTime(sink, "published", e.Published)
	writeLinks(sink, e.Links)
	writeText(sink, "rights", e.Rights)
	writePeople(sink, "author", e.Authors)
	writeCategories(sink, e.Categories)
	writePeople(sink, "contributor", e.Contributors)
	if e.Content != nil {
		writeTextConstruct(sink, "content", e.Content)
	}
	if e.Summary != nil {
		writeTextConstruct(sink, "summary", e.Summary)
	}
	if e.Source != nil {
		sink.StartElement("source")
		w.feed(sink, e.Source)
		sink.EndElement()
	}
}

func writeText(sink *xmlsink.Writer, name, value string) {
	if value != "" {
		sink.WriteElement(name, value)
	}
}

func writeTime(sink *xmlsink.Writer, name string, t time.Time) {
	if !t.IsZero() {
		sink.WriteElement(name, datetime.FormatDateTime(t))
	}
}

func writeAttr(sink *xmlsink.Writer, name, value string) {
	if value != "" {
		sink.WriteAttribute(name, value)
	}
}

func writeTextConstruct(sink *xmlsink.Writer, name string, t *model.Text) {
	sink.StartElement(name)
	writeAttr(sink, "type", t.Type)
	if t.Content != "" {
		sink.Text(t.Content)
	}
	sink.EndElement()
}

func writeLinks(sink *xmlsink.Writer, links []model.Link) {
	for _, l := range links {
		sink.StartElement("link")
		writeAttr(sink, "href", l.Href)
		writeAttr(sink, "rel", l.Rel)
		writeAttr(sink, "type", l.Type)
		writeAttr(sink, "hreflang", l.HrefLang)
		writeAttr(sink, "title", l.Title)
		if l.Length > 0 {
			sink.WriteAttribute("length", strconv.FormatInt(l.Length, 10))
		}
		sink.EndElement()
	}
}

func writePeople(sink *xmlsink.Writer, name string, people []model.Person) {
	for _, p := range people {
		sink.StartElement(name)
		writeText(sink, "name", p.Name)
		writeText(sink, "uri", p.URI)
		writeText(sink, "email", p.Email)
		sink.EndElement()
	}
}

func writeCategories(sink *xmlsink.Writer, cats []model.Category) {
	for _, c := range cats {
		sink.StartElement("category")
		writeAttr(sink, "term", c.Term)
		writeAttr(sink, "scheme", c.Scheme)
		writeAttr(sink, "label", c.Label)
		sink.EndElement()
	}
}
