package model

// ShoppingListRequest selects the recipes to merge into one list.
// TargetServings overrides the recipe's default serving count; nil
// means cook as written.
type ShoppingListRequest struct {
	Items []ShoppingListRequestItem `json:"items"`
}

// ShoppingListRequestItem is one (recipe, servings) selection.
type ShoppingListRequestItem struct {
	RecipeID       string   `json:"recipe_id"`
	TargetServings *float64 `json:"target_servings,omitempty"`
}

// ItemSource records which recipe and original line contributed to a
// merged shopping-list entry.
type ItemSource struct {
	RecipeID     string `json:"recipe_id"`
	RecipeTitle  string `json:"recipe_title"`
	OriginalLine string `json:"original_line"`
}

// ShoppingListItem is one line of the final list. Quantity and Unit
// are display strings ("2 ¼", "cup") and are empty when the merge is
// not numeric. Checked is initialized false and owned by the UI layer.
type ShoppingListItem struct {
	Name     string       `json:"name"`
	Quantity string       `json:"quantity,omitempty"`
	Unit     string       `json:"unit,omitempty"`
	Sources  []ItemSource `json:"sources"`
	Checked  bool         `json:"checked"`
}

// ShoppingListResult is the merged output for one request. It lives
// only for the duration of the call; the engine never persists it.
type ShoppingListResult struct {
	Items   []ShoppingListItem `json:"items"`
	Recipes []RecipeRef        `json:"recipes"`
}
