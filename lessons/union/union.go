// Package union validates a form whose privacy level is one of two literals.
package union

import (
	"context"

	g "github.com/reoring/skemalab/dsl"
)

// PrivacyLevel is either Private or Public.
type PrivacyLevel string

const (
	Private PrivacyLevel = "private"
	Public  PrivacyLevel = "public"
)

// Form is a validated repository form.
type Form struct {
	RepoName     string       `json:"repoName"`
	PrivacyLevel PrivacyLevel `json:"privacyLevel"`
}

// FormSchema accepts only the two privacy literals.
var FormSchema = g.MustBind[Form](g.Object().
	Field("repoName", g.StringOf[string]()).
	Field("privacyLevel", g.SchemaOf(g.Union(g.Literal(Private), g.Literal(Public)))))

// ValidateFormInput parses values with FormSchema.
func ValidateFormInput(ctx context.Context, values any) (Form, error) {
	return FormSchema.Parse(ctx, values)
}
