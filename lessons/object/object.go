// Package object fetches one SWAPI person and keeps only the name.
package object

import (
	"context"
	"net/url"

	g "github.com/reoring/skemalab/dsl"
	"github.com/reoring/skemalab/swapi"
)

// Person is the part of a SWAPI person this lesson keeps.
type Person struct {
	Name string `json:"name"`
}

// PersonResult validates a /people/{id}/ body. Every other key is stripped.
var PersonResult = g.MustBind[Person](g.Object().
	Field("name", g.StringOf[string]()))

// FetchStarWarsPersonName returns the name of person id.
func FetchStarWarsPersonName(ctx context.Context, c *swapi.Client, id string) (string, error) {
	p, err := swapi.Get(ctx, c, "people/"+url.PathEscape(id)+"/", PersonResult)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
