package datagraph

// Traverser walks a value graph depth first and reports it to a Visitor.
// A Traverser holds no state and may be reused. A single traversal is
// synchronous and must not be shared between goroutines; traversals may run
// concurrently only when each has its own visitor and an input that no other
// goroutine reads or mutates meanwhile.
type Traverser struct{}

// NewTraverser returns a Traverser.
func NewTraverser() *Traverser { return &Traverser{} }

// Traverse reveals v and visits it. Object-like values are visited entry by
// entry in insertion order, array-like values element by element; anything
// else, nil included, is passed to VisitValue. Traverse never fails; callers
// that need an object or array root check it first with RequireContainer.
func (t *Traverser) Traverse(v any, visitor Visitor) {
	t.traverseValue(Reveal(v), visitor)
}

// Traverse is a shorthand for NewTraverser().Traverse(v, visitor).
func Traverse(v any, visitor Visitor) {
	(&Traverser{}).Traverse(v, visitor)
}

func (t *Traverser) traverseValue(v any, visitor Visitor) {
	switch {
	case IsObject(v):
		t.traverseObject(v, visitor)
	case IsArray(v):
		t.traverseArray(v, visitor)
	default:
		visitor.VisitValue(v)
	}
}

func (t *Traverser) traverseObject(v any, visitor Visitor) {
	name, props := objectEntries(v)
	if name == "" {
		name = DefaultName
	}
	visitor.VisitObjectStart(name)
	for _, p := range props {
		value := Reveal(p.Value)
		visitor.VisitObjectValueStart(p.Key, value)
		t.traverseValue(value, visitor)
		visitor.VisitObjectValueEnd()
	}
	visitor.VisitObjectEnd()
}

func (t *Traverser) traverseArray(v any, visitor Visitor) {
	visitor.VisitArrayStart()
	for _, elem := range arrayElements(v) {
		value := Reveal(elem)
		visitor.VisitArrayValueStart(value)
		t.traverseValue(value, visitor)
		visitor.VisitArrayValueEnd()
	}
	visitor.VisitArrayEnd()
}

// RequireContainer reveals v and returns it when it is object-like or
// array-like. Scalars are rejected with ErrInvalidData.
func RequireContainer(v any) (any, error) {
	r := Reveal(v)
	if IsObject(r) || IsArray(r) {
		return r, nil
	}
	return nil, invalidDataf("value must be an array or object, got %T", v)
}
