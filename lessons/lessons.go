// Package lessons is the registry of schema lessons. Each lesson lives in its
// own package; the registry exposes them uniformly to the CLI.
package lessons

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
	"github.com/reoring/skemalab/lessons/array"
	"github.com/reoring/skemalab/lessons/composing"
	"github.com/reoring/skemalab/lessons/defaults"
	"github.com/reoring/skemalab/lessons/number"
	"github.com/reoring/skemalab/lessons/object"
	"github.com/reoring/skemalab/lessons/optional"
	"github.com/reoring/skemalab/lessons/transform"
	"github.com/reoring/skemalab/lessons/union"
	"github.com/reoring/skemalab/lessons/validations"
)

var (
	ErrUnknownLesson = errors.New("unknown lesson")
	ErrUnknownTarget = errors.New("unknown target")
)

//go:embed notes/*.md
var notesFS embed.FS

// Lesson describes one lesson.
type Lesson struct {
	ID    string
	Title string
	// Network lessons fetch from SWAPI; their targets validate a saved
	// response body instead.
	Network bool
	Targets []Target
}

// Target is one schema of a lesson together with the function that applies it.
type Target struct {
	Name       string
	JSONSchema func() (*js.Schema, error)
	Check      func(ctx context.Context, v any) (any, error)
}

// parseTarget checks input with s alone.
func parseTarget[T any](name string, s skemalab.Schema[T]) Target {
	return checkTarget(name, s, s.Parse)
}

// checkTarget checks input with the lesson function; s provides the JSON Schema.
func checkTarget[T, R any](name string, s skemalab.Schema[T], check func(context.Context, any) (R, error)) Target {
	return Target{
		Name:       name,
		JSONSchema: s.JSONSchema,
		Check: func(ctx context.Context, v any) (any, error) {
			return check(ctx, v)
		},
	}
}

var registry = []Lesson{
	{ID: "01-number", Title: "Number", Targets: []Target{
		checkTarget[float64, string]("number", number.Schema, number.ToString),
	}},
	{ID: "02-object", Title: "Fetch one person", Network: true, Targets: []Target{
		parseTarget("person", object.PersonResult),
	}},
	{ID: "03-array", Title: "Fetch people", Network: true, Targets: []Target{
		parseTarget("people", array.StarWarsPeopleResults),
	}},
	{ID: "05-optional", Title: "Optional fields", Targets: []Target{
		checkTarget("form", optional.FormSchema, optional.ValidateFormInput),
	}},
	{ID: "06-default", Title: "Default values", Targets: []Target{
		checkTarget("form", defaults.FormSchema, defaults.ValidateFormInput),
	}},
	{ID: "07-union", Title: "Unions", Targets: []Target{
		checkTarget("form", union.FormSchema, union.ValidateFormInput),
	}},
	{ID: "08-validations", Title: "String validations", Targets: []Target{
		checkTarget("form", validations.FormSchema, validations.ValidateFormInput),
	}},
	{ID: "09-composing", Title: "Composing objects", Targets: []Target{
		checkTarget("user", composing.UserSchema, composing.ParseUser),
		checkTarget("post", composing.PostSchema, composing.ParsePost),
		checkTarget("comment", composing.CommentSchema, composing.ParseComment),
	}},
	{ID: "10-transform", Title: "Transform", Network: true, Targets: []Target{
		parseTarget("people", transform.StarWarsPeopleResults),
	}},
}

// All returns the lessons in course order.
func All() []Lesson {
	out := make([]Lesson, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a lesson by full id ("07-union"), number ("07", "7") or
// name ("union").
func Lookup(id string) (Lesson, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, l := range registry {
		num, name, _ := strings.Cut(l.ID, "-")
		if id == l.ID || id == num || id == strings.TrimLeft(num, "0") || id == name {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: %q", ErrUnknownLesson, id)
}

// Target returns the named target, or the first one when name is empty.
func (l Lesson) Target(name string) (Target, error) {
	if name == "" && len(l.Targets) > 0 {
		return l.Targets[0], nil
	}
	for _, t := range l.Targets {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("%w %q for lesson %s", ErrUnknownTarget, name, l.ID)
}

// Notes returns the lesson's markdown notes.
func (l Lesson) Notes() (string, error) {
	b, err := notesFS.ReadFile("notes/" + l.ID + ".md")
	if err != nil {
		return "", fmt.Errorf("notes for %s: %w", l.ID, err)
	}
	return string(b), nil
}

// TargetNames lists the target names in declaration order.
func (l Lesson) TargetNames() []string {
	names := make([]string, len(l.Targets))
	for i, t := range l.Targets {
		names[i] = t.Name
	}
	return names
}
