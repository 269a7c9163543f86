package list

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/grocery-cli/internal/model"
)

// ExportText renders a result as a plain-text list for print or
// share: a header naming the source recipes and their serving counts,
// then one "- <quantity> <unit> <name>" line per unchecked item with
// empty fields omitted.
func ExportText(res *model.ShoppingListResult) string {
	var b strings.Builder

	b.WriteString("Shopping list for:\n")
	for _, r := range res.Recipes {
		fmt.Fprintf(&b, "  %s (%s servings)\n", r.Title, formatServings(r.Servings))
	}
	b.WriteString("\n")

	for _, item := range res.Items {
		if item.Checked {
			continue
		}
		b.WriteString("- ")
		if item.Quantity != "" {
			b.WriteString(item.Quantity)
			b.WriteString(" ")
		}
		if item.Unit != "" {
			b.WriteString(item.Unit)
			b.WriteString(" ")
		}
		b.WriteString(item.Name)
		b.WriteString("\n")
	}
	return b.String()
}

// ExportXLSX writes a result as an XLSX workbook with one row per
// item and a sources column naming the contributing recipes.
func ExportXLSX(res *model.ShoppingListResult, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Shopping List")
	if err != nil {
		return eris.Wrap(err, "list: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Item", "Quantity", "Unit", "Sources"} {
		header.AddCell().Value = h
	}

	for _, item := range res.Items {
		row := sheet.AddRow()
		row.AddCell().Value = item.Name
		row.AddCell().Value = item.Quantity
		row.AddCell().Value = item.Unit
		row.AddCell().Value = sourceTitles(item.Sources)
	}

	return eris.Wrapf(f.Save(path), "list: save xlsx %s", path)
}

func sourceTitles(sources []model.ItemSource) string {
	var titles []string
	seen := make(map[string]bool)
	for _, s := range sources {
		if seen[s.RecipeTitle] {
			continue
		}
		seen[s.RecipeTitle] = true
		titles = append(titles, s.RecipeTitle)
	}
	return strings.Join(titles, "; ")
}

func formatServings(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
