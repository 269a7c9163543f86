package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/grocery-cli/internal/config"
	"github.com/sells-group/grocery-cli/internal/list"
	"github.com/sells-group/grocery-cli/internal/recipe"
	"github.com/sells-group/grocery-cli/internal/units"
)

// openStore opens the configured recipe store and runs migrations.
func openStore(ctx context.Context, cfg *config.Config) (recipe.Store, error) {
	var st recipe.Store
	var err error

	switch cfg.Store.Driver {
	case "sqlite", "":
		st, err = recipe.NewSQLite(cfg.Store.DatabaseURL)
	case "postgres":
		st, err = recipe.NewPostgres(ctx, cfg.Store.DatabaseURL, &cfg.Store.Pool)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// newAggregator builds the aggregator with the configured display
// policy and fan-out limit.
func newAggregator(cfg *config.Config, source recipe.Source) (*list.Aggregator, error) {
	opts := []list.Option{list.WithFanOut(cfg.List.FanOut)}

	if cfg.Units.PolicyPath != "" {
		policy, err := units.LoadDisplayPolicy(cfg.Units.PolicyPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, list.WithDisplayPolicy(policy))
	}

	return list.New(source, opts...), nil
}
