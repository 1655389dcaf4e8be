package dsl

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

var formatValidator = validator.New()

type stringCheck struct {
	name string
	fn   func(string) *skemalab.Issue
}

// StringSchema validates strings. Every chaining method returns a copy, so a
// base schema can be shared and refined in several places.
type StringSchema struct {
	checks []stringCheck
	trim   bool

	minLen, maxLen *int
	format         string
	pattern        string
}

var _ skemalab.Schema[string] = (*StringSchema)(nil)

// String returns a string schema with no constraints.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) with(c stringCheck) *StringSchema {
	cp := *s
	cp.checks = append(append([]stringCheck(nil), s.checks...), c)
	return &cp
}

// Min requires at least n characters (runes).
func (s *StringSchema) Min(n int) *StringSchema {
	out := s.with(stringCheck{name: "min", fn: func(v string) *skemalab.Issue {
		if utf8.RuneCountInString(v) >= n {
			return nil
		}
		it := newIssue(skemalab.CodeTooSmall, map[string]any{"type": "string", "minimum": n, "inclusive": true})
		return &it
	}})
	out.minLen = &n
	return out
}

// Max allows at most n characters (runes).
func (s *StringSchema) Max(n int) *StringSchema {
	out := s.with(stringCheck{name: "max", fn: func(v string) *skemalab.Issue {
		if utf8.RuneCountInString(v) <= n {
			return nil
		}
		it := newIssue(skemalab.CodeTooBig, map[string]any{"type": "string", "maximum": n, "inclusive": true})
		return &it
	}})
	out.maxLen = &n
	return out
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int) *StringSchema {
	out := s.with(stringCheck{name: "length", fn: func(v string) *skemalab.Issue {
		c := utf8.RuneCountInString(v)
		switch {
		case c < n:
			it := newIssue(skemalab.CodeTooSmall, map[string]any{"type": "string", "minimum": n, "exact": true})
			return &it
		case c > n:
			it := newIssue(skemalab.CodeTooBig, map[string]any{"type": "string", "maximum": n, "exact": true})
			return &it
		}
		return nil
	}})
	out.minLen, out.maxLen = &n, &n
	return out
}

// NonEmpty is Min(1).
func (s *StringSchema) NonEmpty() *StringSchema { return s.Min(1) }

// Email checks the address with go-playground/validator's email rule.
func (s *StringSchema) Email() *StringSchema {
	out := s.with(formatCheck("email", func(v string) bool { return formatValidator.Var(v, "email") == nil }))
	out.format = "email"
	return out
}

// URL accepts absolute URLs only; "/" and bare words fail.
func (s *StringSchema) URL() *StringSchema {
	out := s.with(formatCheck("url", func(v string) bool { return formatValidator.Var(v, "url") == nil }))
	out.format = "uri"
	return out
}

// UUID accepts the canonical 8-4-4-4-12 hex form.
func (s *StringSchema) UUID() *StringSchema {
	out := s.with(formatCheck("uuid", func(v string) bool {
		if len(v) != 36 {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}))
	out.format = "uuid"
	return out
}

// Regex requires a match of re. name is reported in the issue params.
func (s *StringSchema) Regex(re *regexp.Regexp, name string) *StringSchema {
	out := s.with(stringCheck{name: "regex", fn: func(v string) *skemalab.Issue {
		if re.MatchString(v) {
			return nil
		}
		it := newIssue(skemalab.CodeInvalidFormat, map[string]any{"validation": "regex", "pattern": re.String()})
		if name != "" {
			it.Hint = name
		}
		return &it
	}})
	out.pattern = re.String()
	return out
}

// Trim strips surrounding white space before the checks run.
func (s *StringSchema) Trim() *StringSchema {
	cp := *s
	cp.trim = true
	return &cp
}

func formatCheck(validation string, ok func(string) bool) stringCheck {
	return stringCheck{name: validation, fn: func(v string) *skemalab.Issue {
		if ok(v) {
			return nil
		}
		it := newIssue(skemalab.CodeInvalidFormat, map[string]any{"validation": validation})
		return &it
	}}
}

// Normalize implements skemalab.Normalizer[string].
func (s *StringSchema) Normalize(_ context.Context, v string) (string, error) {
	if s.trim {
		return strings.TrimSpace(v), nil
	}
	return v, nil
}

func (s *StringSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", invalidType("string", v)
	}
	str, err := skemalab.ApplyNormalize[string](ctx, str, s)
	if err != nil {
		return "", err
	}
	var iss skemalab.Issues
	for _, c := range s.checks {
		if it := c.fn(str); it != nil {
			iss = skemalab.AppendIssues(iss, *it)
			if skemalab.IsFailFast(ctx) {
				break
			}
		}
	}
	if len(iss) > 0 {
		return "", iss
	}
	return str, nil
}

func (s *StringSchema) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[string], error) {
	str, err := s.Parse(ctx, v)
	return skemalab.Decoded[string]{Value: str, Presence: skemalab.RootSeen()}, err
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Format: s.format, Pattern: s.pattern}
	if s.minLen != nil {
		out.MinLength = js.Int(*s.minLen)
	}
	if s.maxLen != nil {
		out.MaxLength = js.Int(*s.maxLen)
	}
	return out, nil
}
