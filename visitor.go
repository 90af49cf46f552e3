package datagraph

// Visitor receives the callbacks of a traversal. For every object the
// traverser calls VisitObjectStart, then VisitObjectValueStart and
// VisitObjectValueEnd around each entry, then VisitObjectEnd; arrays follow
// the same pattern with the array hooks. Scalars are reported through
// VisitValue. Start and end calls are always balanced.
type Visitor interface {
	VisitObjectStart(name string)
	VisitObjectEnd()
	VisitObjectValueStart(key string, value any)
	VisitObjectValueEnd()
	VisitArrayStart()
	VisitArrayEnd()
	VisitArrayValueStart(value any)
	VisitArrayValueEnd()
	VisitValue(value any)
}

// NopVisitor implements every hook as a no-op. Embed it to implement only the
// hooks a visitor needs.
type NopVisitor struct{}

func (NopVisitor) VisitObjectStart(string)           {}
func (NopVisitor) VisitObjectEnd()                   {}
func (NopVisitor) VisitObjectValueStart(string, any) {}
func (NopVisitor) VisitObjectValueEnd()              {}
func (NopVisitor) VisitArrayStart()                  {}
func (NopVisitor) VisitArrayEnd()                    {}
func (NopVisitor) VisitArrayValueStart(any)          {}
func (NopVisitor) VisitArrayValueEnd()               {}
func (NopVisitor) VisitValue(any)                    {}

var _ Visitor = NopVisitor{}
