package datagraph

import (
	"errors"
	"io"

	eng "github.com/reoring/datagraph/internal/engine"
)

// ParseJSON decodes JSON input into the value graph: objects become *Object
// with keys in input order, arrays []any, numbers json.Number. Empty input
// yields nil. The limits in opt are enforced while tokens stream through;
// findings are returned as Issues.
func ParseJSON(data []byte, opt ParseOpt) (any, error) {
	return ParseJSONWith(eng.NewBytes(data), opt, nil)
}

// ParseJSONReader is ParseJSON on a reader.
func ParseJSONReader(r io.Reader, opt ParseOpt) (any, error) {
	return ParseJSONWith(eng.NewReader(r), opt, nil)
}

// ParseJSONWith decodes from an engine token source and forwards every
// enforcement finding (warnings included) to sink.
func ParseJSONWith(src eng.TokenSource, opt ParseOpt, sink func(Issue)) (any, error) {
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		FailFast:    opt.FailFast,
	}
	if sink != nil {
		eo.IssueSink = func(si eng.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: src.Location()})
		}
	}
	if eo.Enabled() {
		src = eng.WrapWithEnforcement(src, eo)
	}
	v, err := eng.DecodeOrdered(src)
	if err != nil {
		return nil, toIssues(err, src.Location())
	}
	return v, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error, offset int64) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message, Offset: offset}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: offset}}
}
