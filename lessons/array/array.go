// Package array fetches the first page of SWAPI people.
package array

import (
	"context"

	g "github.com/reoring/skemalab/dsl"
	"github.com/reoring/skemalab/swapi"
)

// Person is one entry of a people page.
type Person struct {
	Name string `json:"name"`
}

// PeopleResults is a page of people. Paging keys are dropped.
type PeopleResults struct {
	Results []Person `json:"results"`
}

// StarWarsPerson validates one entry of results.
var StarWarsPerson = g.MustBind[Person](g.Object().
	Field("name", g.StringOf[string]()))

// StarWarsPeopleResults validates a /people/ body.
var StarWarsPeopleResults = g.MustBind[PeopleResults](g.Object().
	Field("results", g.ArrayOf[Person](StarWarsPerson)))

// FetchStarWarsPeople returns the results of GET /people/.
func FetchStarWarsPeople(ctx context.Context, c *swapi.Client) ([]Person, error) {
	res, err := swapi.Get(ctx, c, "people/", StarWarsPeopleResults)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}
