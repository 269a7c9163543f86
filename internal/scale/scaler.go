// Package scale applies a serving-ratio multiplier to parsed
// ingredients. Ratio bounds are enforced by the caller before anything
// reaches this package.
package scale

import "github.com/sells-group/grocery-cli/internal/model"

// MinRatio and MaxRatio bound the accepted serving-scale range.
const (
	MinRatio float64 = 0.25
	MaxRatio float64 = 10
)

// ValidRatio reports whether a serving ratio is inside the accepted
// range.
func ValidRatio(ratio float64) bool {
	return ratio >= MinRatio && ratio <= MaxRatio
}

// Apply scales one parsed ingredient and attaches provenance. A nil
// quantity passes through untouched; a scaled quantity that is not
// strictly positive is forced back to nil so the list never shows a
// zero or negative amount.
func Apply(in model.ParsedIngredient, ratio float64, recipeID, recipeTitle string) model.ScaledIngredient {
	out := model.ScaledIngredient{
		ParsedIngredient: in,
		RecipeID:         recipeID,
		RecipeTitle:      recipeTitle,
		OriginalLine:     in.Raw,
	}
	if in.Quantity == nil {
		return out
	}

	scaled := *in.Quantity * ratio
	if scaled <= 0 {
		out.Quantity = nil
		return out
	}
	out.Quantity = model.Qty(scaled)
	return out
}
