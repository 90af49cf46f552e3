// Package model contains the feed and error documents the Atom, RSS and
// SOAP writers know how to render. Every model is a datagraph.Structured
// value, so the generic writers can render it too.
package model

import (
	"time"

	"github.com/reoring/datagraph"
)

// props collects the non-empty properties of a model.
type props []datagraph.Property

func (p *props) str(key, v string) {
	if v != "" {
		*p = append(*p, datagraph.Property{Key: key, Value: v})
	}
}

func (p *props) num(key string, v int64) {
	if v != 0 {
		*p = append(*p, datagraph.Property{Key: key, Value: v})
	}
}

func (p *props) time(key string, t time.Time) {
	if !t.IsZero() {
		*p = append(*p, datagraph.Property{Key: key, Value: t})
	}
}

func (p *props) value(key string, v datagraph.Structured) {
	if v != nil && len(v.Properties()) > 0 {
		*p = append(*p, datagraph.Property{Key: key, Value: v})
	}
}

func list[T datagraph.Structured](p *props, key string, items []T) {
	if len(items) == 0 {
		return
	}
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	*p = append(*p, datagraph.Property{Key: key, Value: out})
}
