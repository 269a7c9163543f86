package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/grocery-cli/internal/recipe"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Manage stored recipes",
}

var recipesAddCmd = &cobra.Command{
	Use:   "add <file.yaml>",
	Short: "Import recipes from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		recipes, err := recipe.LoadFile(args[0])
		if err != nil {
			return err
		}

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, r := range recipes {
			created, err := store.CreateRecipe(ctx, r)
			if err != nil {
				return err
			}
			zap.L().Info("recipe added",
				zap.String("id", created.ID),
				zap.String("title", created.Title),
			)
			fmt.Printf("%s  %s\n", created.ID, created.Title)
		}
		return nil
	},
}

var recipesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		recipes, err := store.ListRecipes(ctx, 0, 0)
		if err != nil {
			return err
		}
		for _, r := range recipes {
			fmt.Printf("%s  %-30s  %g servings, %d ingredients\n",
				r.ID, r.Title, r.DefaultServings, len(r.IngredientLines))
		}
		return nil
	},
}

var recipesRmCmd = &cobra.Command{
	Use:   "rm <recipe-id>",
	Short: "Delete a stored recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteRecipe(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	recipesCmd.AddCommand(recipesAddCmd, recipesLsCmd, recipesRmCmd)
	rootCmd.AddCommand(recipesCmd)
}
