package visitor

import (
	"strings"

	"github.com/fatih/color"

	"github.com/reoring/datagraph"
)

const (
	textIndent   = 4
	textMaxRunes = 32
	textEllipsis = " (...)"
)

// TextOptions configures TextVisitor.
type TextOptions struct {
	// Color highlights names, keys and values with ANSI colours regardless
	// of the terminal detection done by the color package.
	Color bool
}

// TextVisitor renders an indented, human readable dump. Strings are put on a
// single line and cut after 32 characters; the output is not meant to be
// parsed back.
type TextVisitor struct {
	buf     strings.Builder
	names   names
	inArray []bool
	paint   textPalette
}

type textPalette struct {
	name, key, str, num, lit func(a ...any) string
}

// NewTextVisitor returns a TextVisitor.
func NewTextVisitor(opt TextOptions) *TextVisitor {
	return &TextVisitor{paint: newTextPalette(opt.Color)}
}

func newTextPalette(enabled bool) textPalette {
	if !enabled {
		plain := func(a ...any) string {
			s, _ := a[0].(string)
			return s
		}
		return textPalette{plain, plain, plain, plain, plain}
	}
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return textPalette{
		name: mk(color.FgBlue, color.Bold),
		key:  mk(color.FgCyan),
		str:  mk(color.FgGreen),
		num:  mk(color.FgYellow),
		lit:  mk(color.FgMagenta),
	}
}

// Output returns the dump written so far.
func (v *TextVisitor) Output() string { return v.buf.String() }

func (v *TextVisitor) VisitObjectStart(name string) {
	name = v.names.objectName(name)
	v.writeLn("Object("+v.paint.name(name)+"){", v.parentIsArray())
	v.push(false)
}

func (v *TextVisitor) VisitObjectEnd() {
	v.pop()
	v.writeLn("}", true)
}

func (v *TextVisitor) VisitObjectValueStart(key string, _ any) {
	v.names.entry(key)
	v.write(v.paint.key(key)+" = ", true)
}

func (v *TextVisitor) VisitObjectValueEnd() {}

func (v *TextVisitor) VisitArrayStart() {
	v.writeLn("Array[", v.parentIsArray())
	v.push(true)
}

func (v *TextVisitor) VisitArrayEnd() {
	v.pop()
	v.writeLn("]", true)
}

func (v *TextVisitor) VisitArrayValueStart(any) {}
func (v *TextVisitor) VisitArrayValueEnd()      {}

func (v *TextVisitor) VisitValue(value any) {
	v.writeLn(v.format(value), v.parentIsArray())
}

func (v *TextVisitor) format(value any) string {
	switch t := Scalar(value).(type) {
	case nil:
		return v.paint.lit("null")
	case bool:
		return v.paint.lit(Text(t))
	case string:
		return v.paint.str(Truncate(t))
	default:
		return v.paint.num(Text(t))
	}
}

func (v *TextVisitor) push(array bool) {
	v.inArray = append(v.inArray, array)
	v.names.depth++
}

func (v *TextVisitor) pop() {
	v.inArray = v.inArray[:len(v.inArray)-1]
	v.names.depth--
}

func (v *TextVisitor) parentIsArray() bool {
	n := len(v.inArray)
	return n > 0 && v.inArray[n-1]
}

func (v *TextVisitor) writeLn(s string, pad bool) { v.write(s+"\n", pad) }

func (v *TextVisitor) write(s string, pad bool) {
	if pad {
		v.buf.WriteString(strings.Repeat(" ", len(v.inArray)*textIndent))
	}
	v.buf.WriteString(s)
}

var _ datagraph.Visitor = (*TextVisitor)(nil)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Truncate collapses line breaks into spaces and cuts s after 32 runes,
// marking the cut with " (...)".
func Truncate(s string) string {
	s = lineBreaks.Replace(s)
	r := []rune(s)
	if len(r) > textMaxRunes {
		return string(r[:textMaxRunes]) + textEllipsis
	}
	return s
}
