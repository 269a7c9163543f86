package list

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/grocery-cli/internal/model"
)

func testResult() *model.ShoppingListResult {
	return &model.ShoppingListResult{
		Recipes: []model.RecipeRef{
			{RecipeID: "a", Title: "Pasta", Servings: 4},
			{RecipeID: "b", Title: "Salad", Servings: 2.5},
		},
		Items: []model.ShoppingListItem{
			{
				Name:     "olive oil",
				Quantity: "5",
				Unit:     "tbsp",
				Sources: []model.ItemSource{
					{RecipeID: "a", RecipeTitle: "Pasta", OriginalLine: "2 tbsp olive oil"},
					{RecipeID: "b", RecipeTitle: "Salad", OriginalLine: "3 tbsp olive oil"},
				},
			},
			{
				Name:    "Salt and pepper to taste",
				Sources: []model.ItemSource{{RecipeID: "a", RecipeTitle: "Pasta", OriginalLine: "Salt and pepper to taste"}},
			},
			{
				Name:     "eggs",
				Quantity: "3",
				Sources:  []model.ItemSource{{RecipeID: "b", RecipeTitle: "Salad", OriginalLine: "3 eggs"}},
			},
		},
	}
}

func TestExportText(t *testing.T) {
	got := ExportText(testResult())

	want := "Shopping list for:\n" +
		"  Pasta (4 servings)\n" +
		"  Salad (2.5 servings)\n" +
		"\n" +
		"- 5 tbsp olive oil\n" +
		"- Salt and pepper to taste\n" +
		"- 3 eggs\n"
	assert.Equal(t, want, got)
}

func TestExportText_SkipsCheckedItems(t *testing.T) {
	res := testResult()
	res.Items[0].Checked = true

	got := ExportText(res)
	assert.NotContains(t, got, "olive oil")
	assert.Contains(t, got, "- 3 eggs\n")
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xlsx")
	require.NoError(t, ExportXLSX(testResult(), path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	require.Len(t, sheet.Rows, 4)

	header := sheet.Rows[0]
	assert.Equal(t, "Item", header.Cells[0].Value)
	assert.Equal(t, "Sources", header.Cells[3].Value)

	oil := sheet.Rows[1]
	assert.Equal(t, "olive oil", oil.Cells[0].Value)
	assert.Equal(t, "5", oil.Cells[1].Value)
	assert.Equal(t, "tbsp", oil.Cells[2].Value)
	assert.Equal(t, "Pasta; Salad", oil.Cells[3].Value)

	salt := sheet.Rows[2]
	assert.Equal(t, "Salt and pepper to taste", salt.Cells[0].Value)
	assert.Equal(t, "Pasta", salt.Cells[3].Value)
}
