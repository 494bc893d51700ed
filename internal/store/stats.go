package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath            string          `json:"db_path"`
	DBSizeBytes       int64           `json:"db_size_bytes"`
	Ingredients       int             `json:"ingredients"`
	SystemIngredients int             `json:"system_ingredients"`
	Conversions       int             `json:"conversions"`
	Categories        []CategoryStats `json:"categories"`
}

// CategoryStats holds per-category counts.
type CategoryStats struct {
	Category    string `json:"category"`
	Ingredients int    `json:"ingredients"`
	Conversions int    `json:"conversions"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingredients`).Scan(&st.Ingredients)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingredients WHERE system = 1`).Scan(&st.SystemIngredients)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&st.Conversions)

	cats, err := s.Categories(ctx)
	if err != nil {
		return st, err
	}
	st.Categories = cats
	return st, nil
}

// Categories returns per-category ingredient and conversion counts.
// Uncategorized ingredients are grouped under an empty category name.
func (s *SQLiteStore) Categories(ctx context.Context) ([]CategoryStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(i.category, '') AS cat,
		       COUNT(DISTINCT i.id) AS ingredients,
		       COUNT(c.id) AS conversions
		FROM ingredients i
		LEFT JOIN conversions c ON c.ingredient_id = i.id
		GROUP BY cat ORDER BY ingredients DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []CategoryStats
	for rows.Next() {
		var cs CategoryStats
		rows.Scan(&cs.Category, &cs.Ingredients, &cs.Conversions)
		cats = append(cats, cs)
	}
	return cats, nil
}
