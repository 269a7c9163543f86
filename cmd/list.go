package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/grocery-cli/internal/list"
	"github.com/sells-group/grocery-cli/internal/model"
)

var (
	listJSON bool
	listXLSX string
)

var listCmd = &cobra.Command{
	Use:   "list <recipe-id[:servings]> [recipe-id[:servings]...]",
	Short: "Build a merged shopping list from stored recipes",
	Long:  "Parses, scales, and merges the ingredients of the selected recipes. Append :N to a recipe id to scale it to N servings.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		req, err := parseSelections(args)
		if err != nil {
			return err
		}

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		agg, err := newAggregator(cfg, store)
		if err != nil {
			return err
		}

		result, err := agg.Aggregate(ctx, req)
		if err != nil {
			return err
		}

		if listXLSX != "" {
			if err := list.ExportXLSX(result, listXLSX); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", listXLSX)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Print(list.ExportText(result))
		return nil
	},
}

// parseSelections converts "id[:servings]" args into a request.
func parseSelections(args []string) (model.ShoppingListRequest, error) {
	var req model.ShoppingListRequest
	for _, arg := range args {
		id, servings, found := strings.Cut(arg, ":")
		item := model.ShoppingListRequestItem{RecipeID: id}
		if found {
			v, err := strconv.ParseFloat(servings, 64)
			if err != nil {
				return req, eris.Errorf("invalid servings in %q", arg)
			}
			item.TargetServings = model.Qty(v)
		}
		req.Items = append(req.Items, item)
	}
	return req, nil
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the full result as JSON")
	listCmd.Flags().StringVar(&listXLSX, "xlsx", "", "also write the list to an XLSX file")
	rootCmd.AddCommand(listCmd)
}
