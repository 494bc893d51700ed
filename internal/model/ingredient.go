// Package model defines the core ingredient data types.
package model

import (
	"time"

	"github.com/rcliao/cookconv/internal/engine"
	"github.com/rcliao/cookconv/internal/unit"
)

// Ingredient is a stored ingredient and its recorded conversion facts.
// System marks entries shipped with the tool as opposed to user-authored ones.
type Ingredient struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand,omitempty"`
	Category    string       `json:"category,omitempty"`
	System      bool         `json:"system,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Conversions []Conversion `json:"conversions,omitempty"`
}

// Conversion is one recorded ratio between two units, scoped to an
// ingredient: FromAmount FromUnit = ToAmount ToUnit. Seq preserves the order
// facts were recorded in, which the engine's resolution order depends on.
type Conversion struct {
	ID           string    `json:"id"`
	IngredientID string    `json:"ingredient_id"`
	Seq          int       `json:"seq"`
	FromAmount   float64   `json:"from_amount"`
	FromUnit     unit.Unit `json:"from_unit"`
	ToAmount     float64   `json:"to_amount"`
	ToUnit       unit.Unit `json:"to_unit"`
	CreatedAt    time.Time `json:"created_at"`
}

// Fact returns the read-only tuple the conversion engine consumes.
func (c Conversion) Fact() engine.Fact {
	return engine.Fact{
		FromAmount: c.FromAmount,
		FromUnit:   c.FromUnit,
		ToAmount:   c.ToAmount,
		ToUnit:     c.ToUnit,
	}
}

// Facts flattens an ingredient's conversions for the engine, in seq order.
func (i Ingredient) Facts() []engine.Fact {
	facts := make([]engine.Fact, len(i.Conversions))
	for n, c := range i.Conversions {
		facts[n] = c.Fact()
	}
	return facts
}
