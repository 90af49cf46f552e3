package model

import (
	"time"

	"github.com/reoring/datagraph"
)

// Text is an Atom text construct.
type Text struct {
	Type    string // text, html, xhtml or a media type
	Content string
}

func (t *Text) DisplayName() string { return "text" }

func (t *Text) Properties() []datagraph.Property {
	var p props
	if t == nil {
		return p
	}
	p.str("type", t.Type)
	p.str("content", t.Content)
	return p
}

// Link is an Atom link.
type Link struct {
	Href     string
	Rel      string
	Type     string
	HrefLang string
	Title    string
	Length   int64
}

func (l Link) DisplayName() string { return "link" }

func (l Link) Properties() []datagraph.Property {
	var p props
	p.str("href", l.Href)
	p.str("rel", l.Rel)
	p.str("type", l.Type)
	p.str("hreflang", l.HrefLang)
	p.str("title", l.Title)
	p.num("length", l.Length)
	return p
}

// Person is an Atom author or contributor.
type Person struct {
	Name  string
	URI   string
	Email string
}

func (a Person) DisplayName() string { return "person" }

func (a Person) Properties() []datagraph.Property {
	var p props
	p.str("name", a.Name)
	p.str("uri", a.URI)
	p.str("email", a.Email)
	return p
}

// Category is an Atom category.
type Category struct {
	Term   string
	Scheme string
	Label  string
}

func (c Category) DisplayName() string { return "category" }

func (c Category) Properties() []datagraph.Property {
	var p props
	p.str("term", c.Term)
	p.str("scheme", c.Scheme)
	p.str("label", c.Label)
	return p
}

// Generator names the software that produced a feed.
type Generator struct {
	Text    string
	URI     string
	Version string
}

func (g *Generator) DisplayName() string { return "generator" }

func (g *Generator) Properties() []datagraph.Property {
	var p props
	if g == nil {
		return p
	}
	p.str("text", g.Text)
	p.str("uri", g.URI)
	p.str("version", g.Version)
	return p
}

// Feed is an Atom feed document.
type Feed struct {
	ID           string
	Title        string
	Updated      time.Time
	Subtitle     *Text
	Links        []Link
	Rights       string
	Generator    *Generator
	Authors      []Person
	Categories   []Category
	Contributors []Person
	Icon         string
	Logo         string
	Entries      []*Entry
}

func (f *Feed) DisplayName() string { return "feed" }

func (f *Feed) Properties() []datagraph.Property {
	var p props
	p.str("id", f.ID)
	p.str("title", f.Title)
	p.time("updated", f.Updated)
	if f.Subtitle != nil {
		p.value("subtitle", f.Subtitle)
	}
	list(&p, "link", f.Links)
	p.str("rights", f.Rights)
	if f.Generator != nil {
		p.value("generator", f.Generator)
	}
	list(&p, "author", f.Authors)
	list(&p, "category", f.Categories)
	list(&p, "contributor", f.Contributors)
	p.str("icon", f.Icon)
	p.str("logo", f.Logo)
	list(&p, "entry", f.Entries)
	return p
}

// Entry is an Atom entry.
type Entry struct {
	ID           string
	Title        string
	Updated      time.Time
	Published    time.Time
	Links        []Link
	Rights       string
	Authors      []Person
	Categories   []Category
	Contributors []Person
	Content      *Text
	Summary      *Text
	Source       *Feed
}

func (e *Entry) DisplayName() string { return "entry" }

func (e *Entry) Properties() []datagraph.Property {
	var p props
	p.str("id", e.ID)
	p.str("title", e.Title)
	p.time("updated", e.Updated)
	p.time("published", e.Published)
	list(&p, "link", e.Links)
	p.str("rights", e.Rights)
	list(&p, "author", e.Authors)
	list(&p, "category", e.Categories)
	list(&p, "contributor", e.Contributors)
	if e.Content != nil {
		p.value("content", e.Content)
	}
	if e.Summary != nil {
		p.value("summary", e.Summary)
	}
	if e.Source != nil {
		p.value("source", e.Source)
	}
	return p
}
