package model

import "time"

// Recipe is a stored recipe as the engine consumes it: a title, the
// serving count the ingredient lines were written for, and the raw
// ingredient text.
type Recipe struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DefaultServings float64   `json:"default_servings"`
	IngredientLines []string  `json:"ingredient_lines"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecipeRef identifies a recipe that contributed to a shopping list,
// with the serving count actually used for scaling.
type RecipeRef struct {
	RecipeID string  `json:"recipe_id"`
	Title    string  `json:"title"`
	Servings float64 `json:"servings"`
}
