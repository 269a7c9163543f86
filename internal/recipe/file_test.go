package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecipeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRecipeFile(t, `
recipes:
  - id: pancakes-1
    title: Pancakes
    default_servings: 4
    ingredients:
      - 2 cups flour
      - 3 eggs
  - title: Water
    default_servings: 1
`)

	recipes, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, "pancakes-1", recipes[0].ID)
	assert.Equal(t, "Pancakes", recipes[0].Title)
	assert.Equal(t, 4.0, recipes[0].DefaultServings)
	assert.Equal(t, []string{"2 cups flour", "3 eggs"}, recipes[0].IngredientLines)

	assert.Empty(t, recipes[1].ID)
	assert.Empty(t, recipes[1].IngredientLines)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no recipes key", "something: else\n"},
		{"missing title", "recipes:\n  - default_servings: 4\n"},
		{"zero servings", "recipes:\n  - title: Pancakes\n    default_servings: 0\n"},
		{"negative servings", "recipes:\n  - title: Pancakes\n    default_servings: -2\n"},
		{"not yaml", "recipes: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeRecipeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
