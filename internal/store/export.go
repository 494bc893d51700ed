package store

import (
	"context"

	"github.com/rcliao/cookconv/internal/model"
)

// ExportAll returns every ingredient with its facts, ordered by name.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Ingredient, error) {
	return s.List(ctx, ListParams{Limit: 100000})
}

// Import stores ingredients from an export. Ingredients whose name already
// exists are skipped; returns the number actually imported.
func (s *SQLiteStore) Import(ctx context.Context, ingredients []model.Ingredient) (int, error) {
	imported := 0
	for _, ing := range ingredients {
		_, err := s.AddIngredient(ctx, AddIngredientParams{
			Name:     ing.Name,
			Brand:    ing.Brand,
			Category: ing.Category,
			System:   ing.System,
		})
		if err != nil {
			continue
		}
		for _, c := range ing.Conversions {
			_, err := s.AddConversion(ctx, AddConversionParams{
				Ingredient: ing.Name,
				FromAmount: c.FromAmount,
				FromUnit:   c.FromUnit,
				ToAmount:   c.ToAmount,
				ToUnit:     c.ToUnit,
			})
			if err != nil {
				return imported, err
			}
		}
		imported++
	}
	return imported, nil
}
