// Package defaults validates a form whose keywords fall back to an empty list.
package defaults

import (
	"context"

	g "github.com/reoring/skemalab/dsl"
)

// Form is a validated repository form.
type Form struct {
	RepoName string   `json:"repoName"`
	Keywords []string `json:"keywords"`
}

// FormSchema fills in an empty keywords list when the key is missing.
var FormSchema = g.MustBind[Form](g.Object().
	Field("repoName", g.StringOf[string]()).
	Field("keywords", g.ArrayOf[string](g.String())).Default([]string{}))

// ValidateFormInput parses values with FormSchema.
func ValidateFormInput(ctx context.Context, values any) (Form, error) {
	return FormSchema.Parse(ctx, values)
}
