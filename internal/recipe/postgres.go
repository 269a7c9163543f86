package recipe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/grocery-cli/internal/model"
)

// PgxPool is the subset of pgxpool.Pool the store uses. pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool PgxPool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests.
func NewPostgresFromPool(pool PgxPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS recipes (
	id               TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	title            TEXT NOT NULL,
	default_servings DOUBLE PRECISION NOT NULL,
	ingredient_lines JSONB NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title);
CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateRecipe(ctx context.Context, r model.Recipe) (*model.Recipe, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().UTC()

	linesJSON, err := json.Marshal(r.IngredientLines)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal ingredient lines")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO recipes (id, title, default_servings, ingredient_lines, created_at) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.Title, r.DefaultServings, linesJSON, r.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: insert recipe %s", r.ID)
	}
	return &r, nil
}

func (s *PostgresStore) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, default_servings, ingredient_lines, created_at FROM recipes WHERE id = $1`,
		id,
	)

	var r model.Recipe
	var linesJSON []byte
	err := row.Scan(&r.ID, &r.Title, &r.DefaultServings, &linesJSON, &r.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get recipe %s", id)
	}

	if err := json.Unmarshal(linesJSON, &r.IngredientLines); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal ingredient lines")
	}
	return &r, nil
}

func (s *PostgresStore) ListRecipes(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, title, default_servings, ingredient_lines, created_at FROM recipes
		 ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list recipes")
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var r model.Recipe
		var linesJSON []byte
		if err := rows.Scan(&r.ID, &r.Title, &r.DefaultServings, &linesJSON, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan recipe")
		}
		if err := json.Unmarshal(linesJSON, &r.IngredientLines); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal ingredient lines")
		}
		recipes = append(recipes, r)
	}
	return recipes, eris.Wrap(rows.Err(), "postgres: list recipes iterate")
}

func (s *PostgresStore) DeleteRecipe(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete recipe %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "id %s", id)
	}
	return nil
}
