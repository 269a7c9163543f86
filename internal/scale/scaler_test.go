package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/grocery-cli/internal/model"
)

func TestValidRatio(t *testing.T) {
	assert.True(t, ValidRatio(0.25))
	assert.True(t, ValidRatio(1))
	assert.True(t, ValidRatio(10))
	assert.False(t, ValidRatio(0.2))
	assert.False(t, ValidRatio(10.5))
	assert.False(t, ValidRatio(0))
	assert.False(t, ValidRatio(-1))
}

func TestApply_ScalesQuantity(t *testing.T) {
	in := model.ParsedIngredient{Raw: "2 cups flour", Quantity: model.Qty(2), Unit: "cup", Name: "flour"}

	// Default servings 4 scaled to 6 is a 1.5 ratio.
	out := Apply(in, 1.5, "r1", "Pancakes")
	require.NotNil(t, out.Quantity)
	assert.InDelta(t, 3.0, *out.Quantity, 1e-9)
	assert.Equal(t, "cup", out.Unit)
	assert.Equal(t, "flour", out.Name)
}

func TestApply_AttachesProvenance(t *testing.T) {
	in := model.ParsedIngredient{Raw: "1 avocado", Quantity: model.Qty(1), Name: "avocado"}

	out := Apply(in, 2, "r9", "Guacamole")
	assert.Equal(t, "r9", out.RecipeID)
	assert.Equal(t, "Guacamole", out.RecipeTitle)
	assert.Equal(t, "1 avocado", out.OriginalLine)
}

func TestApply_NilQuantityPassthrough(t *testing.T) {
	in := model.ParsedIngredient{Raw: "salt to taste", Name: "salt to taste"}

	for _, ratio := range []float64{0.25, 0.5, 1, 2, 10} {
		out := Apply(in, ratio, "r1", "Soup")
		assert.Nil(t, out.Quantity, "ratio %g", ratio)
	}
}

func TestApply_NeverZeroOrNegative(t *testing.T) {
	in := model.ParsedIngredient{Raw: "0 cups flour", Quantity: model.Qty(0), Unit: "cup", Name: "flour"}
	out := Apply(in, 1, "r1", "Bread")
	assert.Nil(t, out.Quantity)

	in.Quantity = model.Qty(-2)
	out = Apply(in, 2, "r1", "Bread")
	assert.Nil(t, out.Quantity)
}

func TestApply_PositiveStaysPositive(t *testing.T) {
	in := model.ParsedIngredient{Raw: "1 tsp salt", Quantity: model.Qty(1), Unit: "tsp", Name: "salt"}
	for _, ratio := range []float64{0.25, 1, 10} {
		out := Apply(in, ratio, "r1", "Soup")
		require.NotNil(t, out.Quantity)
		assert.Greater(t, *out.Quantity, 0.0)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	q := 2.0
	in := model.ParsedIngredient{Raw: "2 cups flour", Quantity: &q, Unit: "cup", Name: "flour"}
	Apply(in, 3, "r1", "Bread")
	assert.Equal(t, 2.0, q)
}
