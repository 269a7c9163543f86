package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/grocery-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS recipes (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	default_servings REAL NOT NULL,
	ingredient_lines TEXT NOT NULL,
	created_at       DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title);
CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRecipe(ctx context.Context, r model.Recipe) (*model.Recipe, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().UTC()

	linesJSON, err := json.Marshal(r.IngredientLines)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal ingredient lines")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO recipes (id, title, default_servings, ingredient_lines, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.DefaultServings, string(linesJSON), r.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: insert recipe %s", r.ID)
	}
	return &r, nil
}

func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, default_servings, ingredient_lines, created_at FROM recipes WHERE id = ?`,
		id,
	)
	return scanRecipe(row)
}

func (s *SQLiteStore) ListRecipes(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT id, title, default_servings, ingredient_lines, created_at FROM recipes
	          ORDER BY created_at, id LIMIT ?`
	args := []any{limit}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list recipes")
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	return recipes, eris.Wrap(rows.Err(), "sqlite: list recipes iterate")
}

func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete recipe %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "id %s", id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRecipe(row scannable) (*model.Recipe, error) {
	var r model.Recipe
	var linesJSON string

	err := row.Scan(&r.ID, &r.Title, &r.DefaultServings, &linesJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan recipe")
	}

	if err := json.Unmarshal([]byte(linesJSON), &r.IngredientLines); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal ingredient lines")
	}
	return &r, nil
}
