// Package i18n renders issue messages. The English dictionary reproduces the
// wording zod users know ("Expected number, received string", "Required").
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "received", "minimum" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

// Message picks the most specific template for code and fills {placeholders}
// from data. Lookup order: code.type.variant, code.type, code.validation, code.
func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	for _, k := range candidates(code, data) {
		if tpl, ok := dict[k]; ok {
			return fill(tpl, data)
		}
		if tpl, ok := dictionaries["en"][k]; ok {
			return fill(tpl, data)
		}
	}
	return code
}

func candidates(code string, data map[string]string) []string {
	var out []string
	typ := data["type"]
	if typ != "" {
		switch {
		case data["exact"] == "true":
			out = append(out, code+"."+typ+".exact")
		case data["inclusive"] == "false":
			out = append(out, code+"."+typ+".exclusive")
		}
		out = append(out, code+"."+typ)
	}
	if v := data["validation"]; v != "" {
		out = append(out, code+"."+v)
	}
	if code == "invalid_type" && data["received"] == "undefined" {
		out = append(out, "required")
	}
	return append(out, code)
}

func fill(tpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tpl, "{") {
		return tpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja", "zh"} }

// SetLanguage switches the built-in Translator language ("en", "ja" or "zh").
// Unknown languages fall back to English.
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
