// Package transform fetches SWAPI people and splits each name into words.
package transform

import (
	"context"
	"strings"

	g "github.com/reoring/skemalab/dsl"
	"github.com/reoring/skemalab/swapi"
)

type rawPerson struct {
	Name string `json:"name"`
}

// Person is a SWAPI person with its name split on spaces.
type Person struct {
	Name        string   `json:"name"`
	NameAsArray []string `json:"nameAsArray"`
}

// PeopleResults is a page of transformed people.
type PeopleResults struct {
	Results []Person `json:"results"`
}

// StarWarsPerson parses a person and derives NameAsArray.
var StarWarsPerson = g.Transform(
	g.MustBind[rawPerson](g.Object().Field("name", g.StringOf[string]())),
	func(p rawPerson) Person {
		return Person{Name: p.Name, NameAsArray: strings.Split(p.Name, " ")}
	},
)

// StarWarsPeopleResults validates a /people/ body.
var StarWarsPeopleResults = g.MustBind[PeopleResults](g.Object().
	Field("results", g.ArrayOf[Person](StarWarsPerson)))

// FetchStarWarsPeople returns the results of GET /people/ with nameAsArray filled in.
func FetchStarWarsPeople(ctx context.Context, c *swapi.Client) ([]Person, error) {
	res, err := swapi.Get(ctx, c, "people/", StarWarsPeopleResults)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}
