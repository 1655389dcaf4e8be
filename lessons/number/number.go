// Package number checks that an unknown input is a number.
package number

import (
	"context"
	"strconv"

	g "github.com/reoring/skemalab/dsl"
)

// Schema accepts any JSON number.
var Schema = g.Number()

// ToString validates v as a number and returns its shortest decimal form.
func ToString(ctx context.Context, v any) (string, error) {
	n, err := Schema.Parse(ctx, v)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(n, 'f', -1, 64), nil
}
