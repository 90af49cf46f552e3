package datagraph

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Assoc is an ordered key/value container whose keys may or may not form a
// zero-based index. It stands in for dynamically typed "arrays" that are
// either lists or associative maps, such as decoded form fields.
//
// Whether an Assoc is a list is decided by its keys (see IsList), not by how
// it was built.
type Assoc struct {
	m    *orderedmap.OrderedMap[string, any]
	next int
}

// NewAssoc returns an empty Assoc.
func NewAssoc() *Assoc {
	return &Assoc{m: orderedmap.New[string, any]()}
}

// AssocOf builds an Assoc from alternating key/value pairs.
func AssocOf(kv ...any) *Assoc {
	a := NewAssoc()
	for i := 0; i+1 < len(kv); i += 2 {
		k, _ := kv[i].(string)
		a.Set(k, kv[i+1])
	}
	return a
}

// ListOf builds an Assoc keyed 0..n-1.
func ListOf(values ...any) *Assoc {
	a := NewAssoc()
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// Set adds or replaces an entry.
func (a *Assoc) Set(key string, value any) {
	a.init()
	a.m.Set(key, value)
	if i, ok := indexKey(key); ok && i >= a.next {
		a.next = i + 1
	}
}

// Append adds a value under the next free integer key.
func (a *Assoc) Append(value any) {
	a.Set(strconv.Itoa(a.next), value)
}

// Get returns the entry for key.
func (a *Assoc) Get(key string) (any, bool) {
	if a == nil || a.m == nil {
		return nil, false
	}
	return a.m.Get(key)
}

// Len returns the number of entries.
func (a *Assoc) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Keys returns the keys in insertion order.
func (a *Assoc) Keys() []string {
	keys := make([]string, 0, a.Len())
	if a.Len() == 0 {
		return keys
	}
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the values in insertion order.
func (a *Assoc) Values() []any {
	vals := make([]any, 0, a.Len())
	if a.Len() == 0 {
		return vals
	}
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		vals = append(vals, p.Value)
	}
	return vals
}

// Properties returns the entries in insertion order.
func (a *Assoc) Properties() []Property {
	if a.Len() == 0 {
		return []Property{}
	}
	return objectProperties(a.m)
}

// IsList reports whether the keys form a list. An empty Assoc is a list.
//
// The check only looks at the "0" entry and the sum of the integer keys: when
// "0" is missing or holds nil the Assoc is associative, otherwise it is a list
// when the integer keys add up to 0+1+...+(n-1). A lone nil under "0" is
// therefore associative; callers rely on that boundary.
func (a *Assoc) IsList() bool {
	n := a.Len()
	if n == 0 {
		return true
	}
	if v, ok := a.m.Get("0"); !ok || v == nil {
		return false
	}
	sum := 0
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		if i, ok := indexKey(p.Key); ok {
			sum += i
		}
	}
	last := n - 1
	return sum == last*(last+1)/2
}

// Objectify converts the Assoc tree into canonical containers: lists become
// []any and associative entries become *Object. Nested Assoc values are
// converted too.
func (a *Assoc) Objectify() any {
	if a.IsList() {
		out := make([]any, 0, a.Len())
		for _, v := range a.Values() {
			out = append(out, objectifyValue(v))
		}
		return out
	}
	o := NewObject()
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		o.Set(p.Key, objectifyValue(p.Value))
	}
	return o
}

func objectifyValue(v any) any {
	if a, ok := v.(*Assoc); ok {
		return a.Objectify()
	}
	return v
}

func (a *Assoc) init() {
	if a.m == nil {
		a.m = orderedmap.New[string, any]()
	}
}

// indexKey reports whether key is a canonical non-negative integer.
func indexKey(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
