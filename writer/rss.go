package writer

import (
	"strconv"
	"time"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/internal/xmlsink"
	"github.com/reoring/datagraph/model"
)

// RSS writes RSS 2.0 channel and item documents. Other values are rejected
// with datagraph.ErrInvalidData.
type RSS struct{}

func (RSS) Write(v any) (string, error) {
	switch t := v.(type) {
	case *model.RSS:
		return xmlDocument(func(sink *xmlsink.Writer) {
			sink.StartElement("rss")
			sink.WriteAttribute("version", "2.0")
			sink.StartElement("channel")
			channel(sink, t)
			for _, it := range t.Items {
				sink.StartElement("item")
				item(sink, it)
				sink.EndElement()
			}
		}), nil
	case *model.Item:
		return xmlDocument(func(sink *xmlsink.Writer) {
			sink.StartElement("item")
			item(sink, t)
		}), nil
	}
	return "", datagraph.InvalidDataf("rss writer needs a *model.RSS or *model.Item, got %T", v)
}

func (RSS) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "application/rss+xml"
}

func (RSS) ContentType() string { return "application/rss+xml" }

func channel(sink *xmlsink.Writer, r *model.RSS) {
	sink.WriteElement("title", r.Title)
	sink.WriteElement("link", r.Link)
	sink.WriteElement("description", r.Description)
	writeText(sink, "language", r.Language)
	writeText(sink, "copyright", r.Copyright)
	writeText(sink, "managingEditor", r.ManagingEditor)
	writeText(sink, "webMaster", r.WebMaster)
	writeRFC822(sink, "pubDate", r.PubDate)
	writeRFC822(sink, "lastBuildDate", r.LastBuildDate)
	writeRSSCategories(sink, r.Categories)
	writeText(sink, "generator", r.Generator)
	writeText(sink, "docs", r.Docs)
	if c := r.Cloud; c != nil {
		sink.StartElement("cloud")
		writeAttr(sink, "domain", c.Domain)
		if c.Port > 0 {
			sink.WriteAttribute("port", strconv.Itoa(c.Port))
		}
		writeAttr(sink, "path", c.Path)
		writeAttr(sink, "registerProcedure", c.RegisterProcedure)
		writeAttr(sink, "protocol", c.Protocol)
		sink.EndElement()
	}
	if r.TTL > 0 {
		sink.WriteElement("ttl", strconv.Itoa(r.TTL))
	}
	writeText(sink, "rating", r.Rating)
	if len(r.SkipHours) > 0 {
		sink.StartElement("skipHours")
		for _, h := range r.SkipHours {
			sink.WriteElement("hour", strconv.Itoa(h))
		}
		sink.EndElement()
	}
	if len(r.SkipDays) > 0 {
		sink.StartElement("skipDays")
		for _, d := range r.SkipDays {
			sink.WriteElement("day", d)
		}
		sink.EndElement()
	}
}

func item(sink *xmlsink.Writer, it *model.Item) {
	writeText(sink, "title", it.Title)
	writeText(sink, "link", it.Link)
	writeText(sink, "description", it.Description)
	writeText(sink, "author", it.Author)
	writeRSSCategories(sink, it.Categories)
	writeText(sink, "comments", it.Comments)
	if e := it.Enclosure; e != nil {
		sink.StartElement("enclosure")
		writeAttr(sink, "url", e.URL)
		sink.WriteAttribute("length", strconv.FormatInt(e.Length, 10))
		writeAttr(sink, "type", e.Type)
		sink.EndElement()
	}
	writeText(sink, "guid", it.GUID)
	writeRFC822(sink, "pubDate", it.PubDate)
	writeText(sink, "source", it.Source)
}

func writeRSSCategories(sink *xmlsink.Writer, cats []model.RSSCategory) {
	for _, c := range cats {
		sink.StartElement("category")
		writeAttr(sink, "domain", c.Domain)
		if c.Text != "" {
			sink.Text(c.Text)
		}
		sink.EndElement()
	}
}

func writeRFC822(sink *xmlsink.Writer, name string, t time.Time) {
	if !t.IsZero() {
		sink.WriteElement(name, t.Format(time.RFC1123Z))
	}
}
