// Package optional validates a form whose phone number may be left out.
package optional

import (
	"context"

	g "github.com/reoring/skemalab/dsl"
)

// Form is a validated contact form. PhoneNumber is nil when left out.
type Form struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// FormSchema requires name and allows phoneNumber to be missing.
var FormSchema = g.MustBind[Form](g.Object().
	Field("name", g.StringOf[string]()).
	Field("phoneNumber", g.StringOf[string]()).Optional())

// ValidateFormInput parses values with FormSchema.
func ValidateFormInput(ctx context.Context, values any) (Form, error) {
	return FormSchema.Parse(ctx, values)
}
