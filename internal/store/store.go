// Package store provides the ingredient storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/cookconv/internal/model"
	"github.com/rcliao/cookconv/internal/unit"
)

// AddIngredientParams holds parameters for creating an ingredient.
type AddIngredientParams struct {
	Name     string
	Brand    string
	Category string
	System   bool
}

// AddConversionParams holds parameters for recording a conversion fact.
type AddConversionParams struct {
	Ingredient string // ingredient name
	FromAmount float64
	FromUnit   unit.Unit
	ToAmount   float64
	ToUnit     unit.Unit
}

// ListParams holds parameters for listing ingredients.
type ListParams struct {
	Name     string // substring match
	Category string
	System   string // "", "true" or "false"
	Limit    int
}

// RmParams holds parameters for deleting an ingredient or one of its facts.
type RmParams struct {
	Name string
	Seq  int // 0 deletes the whole ingredient, otherwise one fact by seq
}

// Store defines the ingredient storage interface.
type Store interface {
	// AddIngredient creates an ingredient. Names are unique per store.
	AddIngredient(ctx context.Context, p AddIngredientParams) (*model.Ingredient, error)

	// AddConversion appends a conversion fact to an ingredient.
	AddConversion(ctx context.Context, p AddConversionParams) (*model.Conversion, error)

	// Get retrieves an ingredient by name with its facts in recorded order.
	Get(ctx context.Context, name string) (*model.Ingredient, error)

	// List lists ingredients matching the given filters, facts included.
	List(ctx context.Context, p ListParams) ([]model.Ingredient, error)

	// Rm deletes an ingredient or a single fact.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
