// Package recipe provides the recipe source the shopping-list engine
// reads from, with SQLite and Postgres backends.
package recipe

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/grocery-cli/internal/model"
)

// ErrNotFound is returned when a recipe id does not resolve. The
// aggregator fails the whole request on it rather than producing a
// partial list.
var ErrNotFound = eris.New("recipe: not found")

// Source is the lookup boundary the engine depends on. How recipes
// are stored behind it is not the engine's concern.
type Source interface {
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
}

// Store is the full persistence interface for recipe management.
type Store interface {
	Source

	CreateRecipe(ctx context.Context, r model.Recipe) (*model.Recipe, error)
	ListRecipes(ctx context.Context, limit, offset int) ([]model.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}
