package visitor

import (
	"gopkg.in/yaml.v3"

	"github.com/reoring/datagraph"
)

// YAMLVisitor builds a yaml.Node document that keeps entry order.
type YAMLVisitor struct {
	doc   *yaml.Node
	stack []*yaml.Node
}

// NewYAMLVisitor returns a YAMLVisitor.
func NewYAMLVisitor() *YAMLVisitor {
	return &YAMLVisitor{doc: &yaml.Node{Kind: yaml.DocumentNode}}
}

// Document returns the document node built so far.
func (v *YAMLVisitor) Document() *yaml.Node { return v.doc }

func (v *YAMLVisitor) VisitObjectStart(string) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	v.attach(n)
	v.stack = append(v.stack, n)
}

func (v *YAMLVisitor) VisitObjectEnd() { v.stack = v.stack[:len(v.stack)-1] }

func (v *YAMLVisitor) VisitObjectValueStart(key string, _ any) {
	v.attach(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key})
}

func (v *YAMLVisitor) VisitObjectValueEnd() {}

func (v *YAMLVisitor) VisitArrayStart() {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	v.attach(n)
	v.stack = append(v.stack, n)
}

func (v *YAMLVisitor) VisitArrayEnd() { v.stack = v.stack[:len(v.stack)-1] }

func (v *YAMLVisitor) VisitArrayValueStart(any) {}
func (v *YAMLVisitor) VisitArrayValueEnd()      {}

func (v *YAMLVisitor) VisitValue(value any) { v.attach(scalarNode(value)) }

func (v *YAMLVisitor) attach(n *yaml.Node) {
	if len(v.stack) == 0 {
		v.doc.Content = []*yaml.Node{n}
		return
	}
	top := v.stack[len(v.stack)-1]
	top.Content = append(top.Content, n)
}

func scalarNode(value any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch t := Scalar(value).(type) {
	case nil:
		n.Tag, n.Value = "!!null", "null"
	case bool:
		n.Tag, n.Value = "!!bool", Text(t)
	case string:
		n.Tag, n.Value = "!!str", t
	default:
		// numbers resolve implicitly
		n.Value = Text(t)
	}
	return n
}

var _ datagraph.Visitor = (*YAMLVisitor)(nil)
