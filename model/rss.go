package model

import (
	"time"

	"github.com/reoring/datagraph"
)

// RSSCategory is an RSS category with an optional domain.
type RSSCategory struct {
	Text   string
	Domain string
}

func (c RSSCategory) DisplayName() string { return "category" }

func (c RSSCategory) Properties() []datagraph.Property {
	var p props
	p.str("text", c.Text)
	p.str("domain", c.Domain)
	return p
}

// Cloud describes an rssCloud endpoint.
type Cloud struct {
	Domain            string
	Port              int
	Path              string
	RegisterProcedure string
	Protocol          string
}

func (c *Cloud) DisplayName() string { return "cloud" }

func (c *Cloud) Properties() []datagraph.Property {
	var p props
	if c == nil {
		return p
	}
	p.str("domain", c.Domain)
	p.num("port", int64(c.Port))
	p.str("path", c.Path)
	p.str("registerProcedure", c.RegisterProcedure)
	p.str("protocol", c.Protocol)
	return p
}

// Enclosure is a media object attached to an item.
type Enclosure struct {
	URL    string
	Length int64
	Type   string
}

func (e *Enclosure) DisplayName() string { return "enclosure" }

func (e *Enclosure) Properties() []datagraph.Property {
	var p props
	if e == nil {
		return p
	}
	p.str("url", e.URL)
	p.num("length", e.Length)
	p.str("type", e.Type)
	return p
}

// RSS is an RSS 2.0 channel.
type RSS struct {
	Title          string
	Link           string
	Description    string
	Language       string
	Copyright      string
	ManagingEditor string
	WebMaster      string
	PubDate        time.Time
	LastBuildDate  time.Time
	Categories     []RSSCategory
	Generator      string
	Docs           string
	Cloud          *Cloud
	TTL            int
	Rating         string
	SkipHours      []int
	SkipDays       []string
	Items          []*Item
}

func (r *RSS) DisplayName() string { return "rss" }

func (r *RSS) Properties() []datagraph.Property {
	var p props
	p.str("title", r.Title)
	p.str("link", r.Link)
	p.str("description", r.Description)
	p.str("language", r.Language)
	p.str("copyright", r.Copyright)
	p.str("managingEditor", r.ManagingEditor)
	p.str("webMaster", r.WebMaster)
	p.time("pubDate", r.PubDate)
	p.time("lastBuildDate", r.LastBuildDate)
	list(&p, "category", r.Categories)
	p.str("generator", r.Generator)
	p.str("docs", r.Docs)
	if r.Cloud != nil {
		p.value("cloud", r.Cloud)
	}
	p.num("ttl", int64(r.TTL))
	p.str("rating", r.Rating)
	if len(r.SkipHours) > 0 {
		hours := make([]any, len(r.SkipHours))
		for i, h := range r.SkipHours {
			hours[i] = h
		}
		p = append(p, datagraph.Property{Key: "skipHours", Value: hours})
	}
	if len(r.SkipDays) > 0 {
		days := make([]any, len(r.SkipDays))
		for i, d := range r.SkipDays {
			days[i] = d
		}
		p = append(p, datagraph.Property{Key: "skipDays", Value: days})
	}
	list(&p, "item", r.Items)
	return p
}

// Item is an RSS item.
type Item struct {
	Title       string
	Link        string
	Description string
	Author      string
	Categories  []RSSCategory
	Comments    string
	Enclosure   *Enclosure
	GUID        string
	PubDate     time.Time
	Source      string
}

func (i *Item) DisplayName() string { return "item" }

func (i *Item) Properties() []datagraph.Property {
	var p props
	p.str("title", i.Title)
	p.str("link", i.Link)
	p.str("description", i.Description)
	p.str("author", i.Author)
	list(&p, "category", i.Categories)
	p.str("comments", i.Comments)
	if i.Enclosure != nil {
		p.value("enclosure", i.Enclosure)
	}
	p.str("guid", i.GUID)
	p.time("pubDate", i.PubDate)
	p.str("source", i.Source)
	return p
}
