package dsl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/skemalab"
	"github.com/reoring/skemalab/i18n"
)

// newIssue builds a root issue whose message is rendered from params by the
// current translator.
func newIssue(code string, params map[string]any) skemalab.Issue {
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = paramString(v)
	}
	return skemalab.Issue{Path: "/", Code: code, Message: i18n.T(code, data), Params: params}
}

func paramString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func invalidType(expected string, v any) skemalab.Issues {
	return skemalab.Issues{newIssue(skemalab.CodeInvalidType, map[string]any{"expected": expected, "received": typeName(v)})}
}

func requiredIssue(path string) skemalab.Issue {
	it := newIssue(skemalab.CodeRequired, map[string]any{"received": "undefined"})
	it.Path = path
	return it
}

// typeName names the dynamic type of a decoded value the way zod reports it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// quoteOptions renders values as 'a' | 'b'.
func quoteOptions(vals []string) string {
	q := make([]string, len(vals))
	for i, v := range vals {
		q[i] = "'" + v + "'"
	}
	return strings.Join(q, " | ")
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func fieldPath(k string) string { return "/" + pointerEscaper.Replace(k) }

func indexPath(i int) string { return "/" + strconv.Itoa(i) }
