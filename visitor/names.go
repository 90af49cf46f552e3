package visitor

import "github.com/reoring/datagraph"

// names tracks nesting for the debug visitors. Nested objects without a
// name of their own are labelled with the root entry they belong to.
type names struct {
	depth      int
	rootObject bool
	rootKey    string
}

func (n *names) objectName(name string) string {
	if n.depth == 0 {
		n.rootObject = true
		return name
	}
	if name == datagraph.DefaultName && n.rootKey != "" {
		return n.rootKey
	}
	return name
}

func (n *names) entry(key string) {
	if n.rootObject && n.depth == 1 {
		n.rootKey = key
	}
}
