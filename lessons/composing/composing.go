// Package composing shares one id field between three object schemas.
package composing

import (
	"context"

	g "github.com/reoring/skemalab/dsl"
)

// ObjectWithID is the shape every entity extends.
var ObjectWithID = g.Object().
	Field("id", g.StringOf[string](g.String().UUID())).Required()

// User, Post and Comment all carry the shared UUID id.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Schemas for the three entities.
var UserSchema = g.MustBind[User](g.Object().Extend(ObjectWithID).
	Field("name", g.StringOf[string]()))

var PostSchema = g.MustBind[Post](g.Object().Extend(ObjectWithID).
	Field("title", g.StringOf[string]()).
	Field("body", g.StringOf[string]()))

var CommentSchema = g.MustBind[Comment](g.Object().Extend(ObjectWithID).
	Field("text", g.StringOf[string]()))

// ParseUser, ParsePost and ParseComment validate one entity each.
func ParseUser(ctx context.Context, v any) (User, error) { return UserSchema.Parse(ctx, v) }

func ParsePost(ctx context.Context, v any) (Post, error) { return PostSchema.Parse(ctx, v) }

func ParseComment(ctx context.Context, v any) (Comment, error) { return CommentSchema.Parse(ctx, v) }
