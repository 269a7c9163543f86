package model

// ParsedIngredient is the structured form of one ingredient line.
// Raw always holds the original text and is never mutated after
// parsing; when parsing recovers nothing it is the only faithful
// representation. A nil Quantity means the line carries no scalable
// amount ("to taste"). An empty Unit means the ingredient is unitless
// ("1 avocado").
type ParsedIngredient struct {
	Raw      string   `json:"raw"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Name     string   `json:"name"`
	Prep     string   `json:"prep,omitempty"`
	Note     string   `json:"note,omitempty"`
}

// ScaledIngredient is a ParsedIngredient after serving-ratio scaling,
// carrying provenance for the final list's source references.
type ScaledIngredient struct {
	ParsedIngredient

	RecipeID     string `json:"recipe_id"`
	RecipeTitle  string `json:"recipe_title"`
	OriginalLine string `json:"original_line"`
}

// Qty is a convenience constructor for optional quantities.
func Qty(v float64) *float64 { return &v }
