// Package validations adds length and format checks to string fields.
package validations

import (
	"context"

	g "github.com/reoring/skemalab/dsl"
)

// Form is a validated contact form.
type Form struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       string  `json:"email"`
	Website     *string `json:"website,omitempty"`
}

// FormSchema adds length and format checks on top of the plain form.
var FormSchema = g.MustBind[Form](g.Object().
	Field("name", g.StringOf[string](g.String().Min(1))).
	Field("phoneNumber", g.StringOf[string](g.String().Min(5).Max(20))).Optional().
	Field("email", g.StringOf[string](g.String().Email())).
	Field("website", g.StringOf[string](g.String().URL())).Optional())

// ValidateFormInput parses values with FormSchema.
func ValidateFormInput(ctx context.Context, values any) (Form, error) {
	return FormSchema.Parse(ctx, values)
}
