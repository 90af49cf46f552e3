// Package i18n localizes issue messages. Messages are templates whose
// {placeholders} are filled from the data passed with the code.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "min").
type Translator interface {
	Message(code string, data map[string]string) string
}

// message pairs a template with the plain text used when the template's
// data is missing.
type message struct{ tmpl, plain string }

var dictionaries = map[string]map[string]message{
	"en": {
		"invalid_type":   {"invalid type, expected {expected}", "invalid type"},
		"required":       {"required property missing", ""},
		"unknown_key":    {"unknown key", ""},
		"duplicate_key":  {"duplicate key", ""},
		"too_short":      {"too short, at least {min} required", "too short"},
		"too_long":       {"too long, at most {max} allowed", "too long"},
		"too_small":      {"must be at least {min}", "too small"},
		"too_big":        {"must be at most {max}", "too big"},
		"pattern":        {"does not match {pattern}", "pattern mismatch"},
		"invalid_enum":   {"must be one of {allowed}", "invalid value"},
		"invalid_format": {"invalid {format}", "invalid format"},
		"parse_error":    {"parse error", ""},
		"truncated":      {"truncated", ""},
	},
	"ja": {
		"invalid_type":   {"型が不正です（期待: {expected}）", "型が不正です"},
		"required":       {"必須プロパティが不足しています", ""},
		"unknown_key":    {"未知のキーです", ""},
		"duplicate_key":  {"キーが重複しています", ""},
		"too_short":      {"短すぎます（最小: {min}）", "短すぎます"},
		"too_long":       {"長すぎます（最大: {max}）", "長すぎます"},
		"too_small":      {"{min} 以上である必要があります", "小さすぎます"},
		"too_big":        {"{max} 以下である必要があります", "大きすぎます"},
		"pattern":        {"{pattern} に一致しません", "パターンに一致しません"},
		"invalid_enum":   {"{allowed} のいずれかである必要があります", "値が不正です"},
		"invalid_format": {"{format} の形式が不正です", "形式が不正です"},
		"parse_error":    {"解析エラー", ""},
		"truncated":      {"打ち切られました", ""},
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	m, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if out, ok := fill(m.tmpl, data); ok {
		return out
	}
	return m.plain
}

// fill replaces {name} placeholders and reports false when data lacks one.
func fill(tmpl string, data map[string]string) (string, bool) {
	var b strings.Builder
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String(), true
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			return b.String(), true
		}
		v, ok := data[tmpl[i+1:i+j]]
		if !ok {
			return "", false
		}
		b.WriteString(tmpl[:i])
		b.WriteString(v)
		tmpl = tmpl[i+j+1:]
	}
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
