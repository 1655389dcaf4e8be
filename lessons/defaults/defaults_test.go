package defaults_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skemalab/lessons/defaults"
)

func TestValidateFormInput_KeepsKeywords(t *testing.T) {
	f, err := defaults.ValidateFormInput(context.Background(), map[string]any{
		"repoName": "mattpocock",
		"keywords": []any{"123"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, f.Keywords)
}

func TestValidateFormInput_DefaultsKeywords(t *testing.T) {
	f, err := defaults.ValidateFormInput(context.Background(), map[string]any{"repoName": "mattpocock"})
	require.NoError(t, err)
	assert.NotNil(t, f.Keywords)
	assert.Empty(t, f.Keywords)
}

func TestFormSchema_ExportsDefault(t *testing.T) {
	sch, err := defaults.FormSchema.JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, []string{"repoName"}, sch.Required)
	assert.Equal(t, []string{}, sch.Properties["keywords"].Default)
}
