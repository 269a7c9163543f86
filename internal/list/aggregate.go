// Package list builds merged shopping lists: it orchestrates parsing
// and scaling per recipe, groups ingredients across recipes by match
// key, and merges compatible quantities through the unit table.
package list

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/grocery-cli/internal/ingredient"
	"github.com/sells-group/grocery-cli/internal/model"
	"github.com/sells-group/grocery-cli/internal/recipe"
	"github.com/sells-group/grocery-cli/internal/scale"
	"github.com/sells-group/grocery-cli/internal/units"
)

// MaxRecipes caps how many recipes one request may merge.
const MaxRecipes = 20

const defaultFanOut = 5

// ErrMalformedRequest covers structurally invalid requests: empty or
// oversized item lists, duplicate recipe ids, non-positive target
// servings, or a scale ratio outside the accepted range. Nothing is
// partially processed when it is returned.
var ErrMalformedRequest = eris.New("list: malformed request")

// Aggregator merges recipes into shopping lists. It is stateless;
// one instance serves concurrent calls.
type Aggregator struct {
	source recipe.Source
	policy units.DisplayPolicy
	fanOut int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithDisplayPolicy overrides the default unit promotion policy.
func WithDisplayPolicy(p units.DisplayPolicy) Option {
	return func(a *Aggregator) { a.policy = p }
}

// WithFanOut bounds concurrent per-recipe processing.
func WithFanOut(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.fanOut = n
		}
	}
}

// New creates an Aggregator reading recipes from source.
func New(source recipe.Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		source: source,
		policy: units.DefaultDisplayPolicy(),
		fanOut: defaultFanOut,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// recipeBatch is one recipe's fully scaled ingredients, in line order.
type recipeBatch struct {
	ref    model.RecipeRef
	scaled []model.ScaledIngredient
}

// Aggregate builds the merged shopping list for a request. Structural
// problems and unknown recipe ids fail the whole call; unparseable
// ingredient text never does — it is carried through as a raw item
// with no quantity.
func (a *Aggregator) Aggregate(ctx context.Context, req model.ShoppingListRequest) (*model.ShoppingListResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	batches := make([]recipeBatch, len(req.Items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.fanOut)
	for i, item := range req.Items {
		g.Go(func() error {
			batch, err := a.processRecipe(gCtx, item)
			if err != nil {
				return err
			}
			batches[i] = *batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &model.ShoppingListResult{
		Items:   mergeBatches(batches, a.policy),
		Recipes: make([]model.RecipeRef, len(batches)),
	}
	for i, b := range batches {
		result.Recipes[i] = b.ref
	}

	zap.L().Debug("aggregated shopping list",
		zap.Int("recipes", len(result.Recipes)),
		zap.Int("items", len(result.Items)),
	)
	return result, nil
}

func validateRequest(req model.ShoppingListRequest) error {
	if len(req.Items) == 0 {
		return eris.Wrap(ErrMalformedRequest, "no recipes selected")
	}
	if len(req.Items) > MaxRecipes {
		return eris.Wrapf(ErrMalformedRequest, "%d recipes exceeds limit of %d", len(req.Items), MaxRecipes)
	}

	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if item.RecipeID == "" {
			return eris.Wrap(ErrMalformedRequest, "empty recipe id")
		}
		if seen[item.RecipeID] {
			return eris.Wrapf(ErrMalformedRequest, "duplicate recipe id %s", item.RecipeID)
		}
		seen[item.RecipeID] = true

		if item.TargetServings != nil && *item.TargetServings <= 0 {
			return eris.Wrapf(ErrMalformedRequest, "non-positive target servings for recipe %s", item.RecipeID)
		}
	}
	return nil
}

// processRecipe resolves one recipe, computes its serving ratio, and
// parses and scales every non-blank ingredient line.
func (a *Aggregator) processRecipe(ctx context.Context, item model.ShoppingListRequestItem) (*recipeBatch, error) {
	r, err := a.source.GetRecipe(ctx, item.RecipeID)
	if err != nil {
		return nil, err
	}

	servings := r.DefaultServings
	if item.TargetServings != nil {
		servings = *item.TargetServings
	}

	ratio := 1.0
	if r.DefaultServings > 0 {
		ratio = servings / r.DefaultServings
	}
	if !scale.ValidRatio(ratio) {
		return nil, eris.Wrapf(ErrMalformedRequest,
			"recipe %s: scale ratio %.2f outside [%g, %g]", r.ID, ratio, scale.MinRatio, scale.MaxRatio)
	}

	batch := &recipeBatch{
		ref: model.RecipeRef{RecipeID: r.ID, Title: r.Title, Servings: servings},
	}
	for _, line := range r.IngredientLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parsed := ingredient.Parse(line)
		batch.scaled = append(batch.scaled, scale.Apply(parsed, ratio, r.ID, r.Title))
	}
	return batch, nil
}
