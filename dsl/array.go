package dsl

import (
	"context"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	skemalab.Schema[[]E]
	Min(n int) ArrayBuilder[E]
	Max(n int) ArrayBuilder[E]
	NonEmpty() ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem skemalab.Schema[E]) ArrayBuilder[E] {
	return &ArraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

type ArraySchema[E any] struct {
	elem   skemalab.Schema[E]
	minLen int
	maxLen int
}

// Min sets the minimum length.
func (a *ArraySchema[E]) Min(n int) ArrayBuilder[E] { cp := *a; cp.minLen = n; return &cp }

// Max sets the maximum length.
func (a *ArraySchema[E]) Max(n int) ArrayBuilder[E] { cp := *a; cp.maxLen = n; return &cp }

// NonEmpty is Min(1).
func (a *ArraySchema[E]) NonEmpty() ArrayBuilder[E] { return a.Min(1) }

// lengthIssues checks the bounds; element issues are reported first by Parse.
func (a *ArraySchema[E]) lengthIssues(n int) skemalab.Issues {
	var iss skemalab.Issues
	if a.minLen >= 0 && n < a.minLen {
		iss = skemalab.AppendIssues(iss, newIssue(skemalab.CodeTooSmall, map[string]any{"type": "array", "minimum": a.minLen, "inclusive": true}))
	}
	if a.maxLen >= 0 && n > a.maxLen {
		iss = skemalab.AppendIssues(iss, newIssue(skemalab.CodeTooBig, map[string]any{"type": "array", "maximum": a.maxLen, "inclusive": true}))
	}
	return iss
}

func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	d, err := a.parse(ctx, v, false)
	return d.Value, err
}

func (a *ArraySchema[E]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[[]E], error) {
	return a.parse(ctx, v, true)
}

func (a *ArraySchema[E]) parse(ctx context.Context, v any, meta bool) (skemalab.Decoded[[]E], error) {
	var pm skemalab.PresenceMap
	if meta {
		pm = skemalab.RootSeen()
	}
	switch src := v.(type) {
	case []E:
		// already typed, e.g. a Default value
		if iss := a.lengthIssues(len(src)); len(iss) > 0 {
			return skemalab.Decoded[[]E]{Presence: pm}, iss
		}
		return skemalab.Decoded[[]E]{Value: src, Presence: pm}, nil
	case []any:
		res := make([]E, 0, len(src))
		var iss skemalab.Issues
		for i := range src {
			var (
				ev  E
				err error
			)
			if meta {
				var d skemalab.Decoded[E]
				d, err = a.elem.ParseWithMeta(ctx, src[i])
				ev = d.Value
				if err == nil {
					pm.Merge(indexPath(i), d.Presence)
				}
			} else {
				ev, err = a.elem.Parse(ctx, src[i])
			}
			if err != nil {
				iss = skemalab.AppendIssues(iss, skemalab.IssuesFromErr("/", err).Rebase(indexPath(i))...)
				if skemalab.IsFailFast(ctx) {
					return skemalab.Decoded[[]E]{Presence: pm}, iss
				}
				continue
			}
			res = append(res, ev)
		}
		iss = skemalab.AppendIssues(iss, a.lengthIssues(len(src))...)
		if len(iss) > 0 {
			return skemalab.Decoded[[]E]{Presence: pm}, iss
		}
		return skemalab.Decoded[[]E]{Value: res, Presence: pm}, nil
	default:
		return skemalab.Decoded[[]E]{Presence: pm}, invalidType("array", v)
	}
}

func (a *ArraySchema[E]) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: "array", Items: es}
	if a.minLen >= 0 {
		s.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		s.MaxItems = js.Int(a.maxLen)
	}
	return s, nil
}
