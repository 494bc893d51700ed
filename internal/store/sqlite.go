package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/cookconv/internal/model"
	"github.com/rcliao/cookconv/internal/unit"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ingredients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		brand      TEXT,
		category   TEXT,
		system     INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_ingredients_category ON ingredients(category);

	CREATE TABLE IF NOT EXISTS conversions (
		id            TEXT PRIMARY KEY,
		ingredient_id TEXT NOT NULL REFERENCES ingredients(id),
		seq           INTEGER NOT NULL,
		from_amount   REAL NOT NULL,
		from_unit     TEXT NOT NULL,
		to_amount     REAL NOT NULL,
		to_unit       TEXT NOT NULL,
		created_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversions_ingredient ON conversions(ingredient_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) AddIngredient(ctx context.Context, p AddIngredientParams) (*model.Ingredient, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("ingredient name is required")
	}

	var existing string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM ingredients WHERE name = ?`, p.Name).Scan(&existing)
	if err == nil {
		return nil, fmt.Errorf("ingredient already exists: %s", p.Name)
	}

	now := time.Now().UTC()
	id := s.newID()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ingredients (id, name, brand, category, system, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, p.Name, nullable(p.Brand), nullable(p.Category), boolToInt(p.System),
		now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert ingredient: %w", err)
	}

	return &model.Ingredient{
		ID:        id,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		System:    p.System,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) AddConversion(ctx context.Context, p AddConversionParams) (*model.Conversion, error) {
	// The engine divides by both amounts; zero or negative never reaches it.
	if p.FromAmount <= 0 || p.ToAmount <= 0 {
		return nil, fmt.Errorf("conversion amounts must be > 0")
	}

	var ingredientID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM ingredients WHERE name = ?`, p.Ingredient).Scan(&ingredientID)
	if err != nil {
		return nil, fmt.Errorf("ingredient not found: %s", p.Ingredient)
	}

	var seq int
	s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM conversions WHERE ingredient_id = ?`,
		ingredientID).Scan(&seq)

	fromJSON, err := json.Marshal(p.FromUnit)
	if err != nil {
		return nil, fmt.Errorf("encode from unit: %w", err)
	}
	toJSON, err := json.Marshal(p.ToUnit)
	if err != nil {
		return nil, fmt.Errorf("encode to unit: %w", err)
	}

	now := time.Now().UTC()
	id := s.newID()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, ingredient_id, seq, from_amount, from_unit, to_amount, to_unit, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ingredientID, seq, p.FromAmount, string(fromJSON), p.ToAmount, string(toJSON),
		now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert conversion: %w", err)
	}

	return &model.Conversion{
		ID:           id,
		IngredientID: ingredientID,
		Seq:          seq,
		FromAmount:   p.FromAmount,
		FromUnit:     p.FromUnit,
		ToAmount:     p.ToAmount,
		ToUnit:       p.ToUnit,
		CreatedAt:    now,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (*model.Ingredient, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, brand, category, system, created_at
		 FROM ingredients WHERE name = ?`, name)

	ing, err := scanIngredient(row)
	if err != nil {
		return nil, fmt.Errorf("ingredient not found: %s", name)
	}

	if err := s.loadConversions(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Ingredient, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	where := "1=1"
	args := []interface{}{}

	if p.Name != "" {
		where += " AND name LIKE ?"
		args = append(args, "%"+p.Name+"%")
	}
	if p.Category != "" {
		where += " AND category = ?"
		args = append(args, p.Category)
	}
	switch p.System {
	case "true":
		where += " AND system = 1"
	case "false":
		where += " AND system = 0"
	}

	query := `SELECT id, name, brand, category, system, created_at
	          FROM ingredients WHERE ` + where + ` ORDER BY name LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, *ing)
	}

	for i := range ingredients {
		if err := s.loadConversions(ctx, &ingredients[i]); err != nil {
			return nil, err
		}
	}
	return ingredients, nil
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	var ingredientID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM ingredients WHERE name = ?`, p.Name).Scan(&ingredientID)
	if err != nil {
		return fmt.Errorf("ingredient not found: %s", p.Name)
	}

	if p.Seq > 0 {
		res, err := s.db.ExecContext(ctx,
			`DELETE FROM conversions WHERE ingredient_id = ? AND seq = ?`,
			ingredientID, p.Seq)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("conversion not found: %s #%d", p.Name, p.Seq)
		}
		return nil
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM conversions WHERE ingredient_id = ?`, ingredientID); err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = ?`, ingredientID)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// loadConversions fills in an ingredient's facts in seq order. A row whose
// stored units no longer decode is skipped rather than failing the read, so
// one bad record cannot take the whole ingredient down.
func (s *SQLiteStore) loadConversions(ctx context.Context, ing *model.Ingredient) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ingredient_id, seq, from_amount, from_unit, to_amount, to_unit, created_at
		 FROM conversions WHERE ingredient_id = ? ORDER BY seq`, ing.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Conversion
		var fromJSON, toJSON, createdAt string
		err := rows.Scan(&c.ID, &c.IngredientID, &c.Seq, &c.FromAmount, &fromJSON,
			&c.ToAmount, &toJSON, &createdAt)
		if err != nil {
			return err
		}
		if err := decodeUnit(fromJSON, &c.FromUnit); err != nil {
			continue
		}
		if err := decodeUnit(toJSON, &c.ToUnit); err != nil {
			continue
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		ing.Conversions = append(ing.Conversions, c)
	}
	return rows.Err()
}

func decodeUnit(s string, u *unit.Unit) error {
	if err := json.Unmarshal([]byte(s), u); err != nil {
		return err
	}
	if u.Kind == "" {
		return fmt.Errorf("missing unit kind")
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanIngredient(row scanner) (*model.Ingredient, error) {
	var ing model.Ingredient
	var brand, category sql.NullString
	var system int
	var createdAt string

	err := row.Scan(&ing.ID, &ing.Name, &brand, &category, &system, &createdAt)
	if err != nil {
		return nil, err
	}

	ing.Brand = brand.String
	ing.Category = category.String
	ing.System = system != 0
	ing.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &ing, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
