package dsl

import (
	"context"
	"sort"
	"strings"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

type objectSchema struct {
	order         []string
	fields        map[string]AnyAdapter
	optional      map[string]struct{}
	unknownPolicy skemalab.UnknownPolicy
	unknownTarget string
	refines       []objRefine
}

var _ skemalab.Schema[map[string]any] = (*objectSchema)(nil)

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

func (o *objectSchema) isOptional(k string) bool {
	_, ok := o.optional[k]
	return ok
}

// collectKnown parses declared fields in declaration order, applies defaults
// and records presence when pm is non-nil.
func (o *objectSchema) collectKnown(ctx context.Context, src map[string]any, pm skemalab.PresenceMap) (map[string]any, skemalab.Issues) {
	out := make(map[string]any, len(src))
	var iss skemalab.Issues
	for _, k := range o.order {
		ad := o.fields[k]
		path := fieldPath(k)
		if val, exists := src[k]; exists {
			var (
				parsed any
				err    error
			)
			if pm != nil {
				var child skemalab.PresenceMap
				parsed, child, err = ad.parseWithMeta(ctx, val)
				pm.Merge(path, child)
				pm[path] |= skemalab.PresenceSeen
				if val == nil {
					pm[path] |= skemalab.PresenceWasNull
				}
			} else {
				parsed, err = ad.Parse(ctx, val)
			}
			if err != nil {
				iss = skemalab.AppendIssues(iss, skemalab.IssuesFromErr("/", err).Rebase(path)...)
				if skemalab.IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			out[k] = parsed
			continue
		}
		if ad.applyDefault != nil {
			dv, err := ad.applyDefault(ctx)
			if err != nil {
				iss = skemalab.AppendIssues(iss, skemalab.IssuesFromErr("/", err).Rebase(path)...)
				if skemalab.IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			if pm != nil {
				pm[path] |= skemalab.PresenceDefaultApplied
			}
			out[k] = dv
			continue
		}
		if o.isOptional(k) {
			continue
		}
		iss = skemalab.AppendIssues(iss, requiredIssue(path))
		if skemalab.IsFailFast(ctx) {
			return out, iss
		}
	}
	return out, iss
}

// collectUnknown applies the unknown-key policy and may write into out.
func (o *objectSchema) collectUnknown(src map[string]any, out map[string]any, pm skemalab.PresenceMap) skemalab.Issues {
	var uks []string
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	if len(uks) == 0 {
		return nil
	}
	sort.Strings(uks)
	switch o.unknownPolicy {
	case skemalab.UnknownStrict:
		it := newIssue(skemalab.CodeUnknownKey, map[string]any{"keys": quoteList(uks)})
		it.Params["unrecognized"] = uks
		return skemalab.Issues{it}
	case skemalab.UnknownPassthrough:
		var extra map[string]any
		if o.unknownTarget != "" {
			extra = make(map[string]any, len(uks))
			out[o.unknownTarget] = extra
		}
		for _, k := range uks {
			if extra != nil {
				extra[k] = src[k]
			} else {
				out[k] = src[k]
			}
			// presence stays in wire shape
			if pm != nil {
				skemalab.MarkSubtree(pm, fieldPath(k), src[k])
			}
		}
	}
	return nil
}

func quoteList(keys []string) string {
	q := make([]string, len(keys))
	for i, k := range keys {
		q[i] = "'" + k + "'"
	}
	return strings.Join(q, ", ")
}

func (o *objectSchema) parse(ctx context.Context, v any, pm skemalab.PresenceMap) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object", v)
	}
	out, iss := o.collectKnown(ctx, src, pm)
	if skemalab.IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}
	iss = skemalab.AppendIssues(iss, o.collectUnknown(src, out, pm)...)
	if len(iss) > 0 {
		return nil, iss
	}
	if err := skemalab.ApplyRefine[map[string]any](ctx, out, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	return o.parse(ctx, v, nil)
}

func (o *objectSchema) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[map[string]any], error) {
	pm := skemalab.RootSeen()
	m, err := o.parse(ctx, v, pm)
	return skemalab.Decoded[map[string]any]{Value: m, Presence: pm}, err
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	var req []string
	for _, k := range o.order {
		ps, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		props[k] = ps
		if !o.isOptional(k) && o.fields[k].applyDefault == nil {
			req = append(req, k)
		}
	}
	var additional any
	switch o.unknownPolicy {
	case skemalab.UnknownStrict:
		additional = false
	default:
		// Strip and Passthrough both accept unknown keys at the wire level.
		additional = true
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}

// Refine implements skemalab.Refiner[map[string]any] using builder-registered hooks.
func (o *objectSchema) Refine(ctx context.Context, v map[string]any) error {
	var iss skemalab.Issues
	for _, r := range o.refines {
		if err := r.fn(ctx, v); err != nil {
			if i2, ok := skemalab.AsIssues(err); ok {
				iss = skemalab.AppendIssues(iss, i2...)
			} else {
				iss = skemalab.AppendIssues(iss, skemalab.Issue{Path: "/", Code: skemalab.CodeCustom, Message: err.Error(), Hint: r.name, Cause: err})
			}
			if skemalab.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
