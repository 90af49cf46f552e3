package writer

import (
	"regexp"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/visitor"
)

// JSON writes pretty printed JSON with four space indentation.
type JSON struct{}

func (JSON) Write(v any) (string, error) {
	c, err := container(v)
	if err != nil {
		return "", err
	}
	vis := visitor.NewObjectVisitor()
	datagraph.Traverse(c, vis)
	tree, err := vis.Value()
	if err != nil {
		return "", err
	}
	out, err := gojson.MarshalIndent(tree, "", "    ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (JSON) IsContentTypeSupported(mt mediatype.MediaType) bool {
	switch mt.Name() {
	case "application/json", "text/json":
		return true
	}
	return mt.Type == "application" && mt.Suffix() == "json"
}

func (JSON) ContentType() string { return "application/json" }

var callbackName = regexp.MustCompile(`^[A-Za-z0-9._]{3,64}$`)

// JSONP wraps the JSON output in a callback invocation. Without a valid
// callback name the output is plain JSON.
type JSONP struct {
	callback string
}

// NewJSONP returns a JSONP writer using callback when it is a valid name.
func NewJSONP(callback string) *JSONP {
	w := &JSONP{}
	w.SetCallbackName(callback)
	return w
}

// SetCallbackName sets the callback. Names outside [A-Za-z0-9._]{3,64} are
// ignored.
func (w *JSONP) SetCallbackName(name string) {
	if callbackName.MatchString(name) {
		w.callback = name
	}
}

// CallbackName returns the current callback, "" when unset.
func (w *JSONP) CallbackName() string { return w.callback }

func (w *JSONP) Write(v any) (string, error) {
	out, err := JSON{}.Write(v)
	if err != nil || w.callback == "" {
		return out, err
	}
	return w.callback + "(" + out + ")", nil
}

func (w *JSONP) IsContentTypeSupported(mt mediatype.MediaType) bool {
	return mt.Name() == "application/javascript"
}

func (w *JSONP) ContentType() string { return "application/javascript" }
