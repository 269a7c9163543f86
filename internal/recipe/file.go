package recipe

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/grocery-cli/internal/model"
)

// fileRecipe is the YAML import shape for one recipe.
type fileRecipe struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	DefaultServings float64  `yaml:"default_servings"`
	Ingredients     []string `yaml:"ingredients"`
}

// LoadFile reads recipes from a YAML file with a top-level "recipes"
// list. IDs are optional; the store assigns one when missing. An
// empty ingredient list is allowed (it contributes zero lines, not an
// error), but a missing title or non-positive serving count is
// rejected up front.
func LoadFile(path string) ([]model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "recipe: read file %s", path)
	}

	var wrapper struct {
		Recipes []fileRecipe `yaml:"recipes"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrapf(err, "recipe: parse file %s", path)
	}
	if len(wrapper.Recipes) == 0 {
		return nil, eris.Errorf("recipe: file %s contains no recipes", path)
	}

	recipes := make([]model.Recipe, 0, len(wrapper.Recipes))
	for i, fr := range wrapper.Recipes {
		if fr.Title == "" {
			return nil, eris.Errorf("recipe: entry %d has no title", i)
		}
		if fr.DefaultServings <= 0 {
			return nil, eris.Errorf("recipe: %q has non-positive default_servings", fr.Title)
		}
		recipes = append(recipes, model.Recipe{
			ID:              fr.ID,
			Title:           fr.Title,
			DefaultServings: fr.DefaultServings,
			IngredientLines: fr.Ingredients,
		})
	}
	return recipes, nil
}
