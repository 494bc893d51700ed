// Package unit defines the closed set of kitchen measurement units and the
// standard (same-family) converter between them.
package unit

import (
	"errors"
	"strings"
)

// Family groups units that are physically interchangeable.
type Family string

const (
	FamilyVolume Family = "volume"
	FamilyWeight Family = "weight"
	FamilyCount  Family = "count"
	FamilyOther  Family = "other"
)

// Kind discriminates the unit variants.
type Kind string

const (
	Teaspoon   Kind = "teaspoon"
	Tablespoon Kind = "tablespoon"
	Cup        Kind = "cup"
	Pint       Kind = "pint"
	Quart      Kind = "quart"
	Gallon     Kind = "gallon"
	Liter      Kind = "liter"
	Centiliter Kind = "centiliter"
	Milliliter Kind = "milliliter"
	FluidOunce Kind = "fluid-ounce"

	Pound     Kind = "pound"
	Ounce     Kind = "ounce"
	Gram      Kind = "gram"
	Milligram Kind = "milligram"
	Kilogram  Kind = "kilogram"

	KindCount Kind = "count"
	KindOther Kind = "other"
)

// Unit is a tagged measurement unit value. Standard units carry only a Kind;
// count units carry singular/plural display names and other units a free-form
// name. Two Units are the same unit exactly when they are equal as values, so
// two count units with different name pairs are distinct.
type Unit struct {
	Kind     Kind   `json:"kind"`
	Singular string `json:"singular,omitempty"`
	Plural   string `json:"plural,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Count builds a count unit with the given display names.
func Count(singular, plural string) Unit {
	return Unit{Kind: KindCount, Singular: singular, Plural: plural}
}

// Other builds a unit outside the known families, preserving its name.
func Other(name string) Unit {
	return Unit{Kind: KindOther, Name: name}
}

// Std builds a standard volume or weight unit.
func Std(k Kind) Unit {
	return Unit{Kind: k}
}

// ErrUnsupportedUnit is returned when a scale factor is requested for a unit
// that has none (count and other units).
var ErrUnsupportedUnit = errors.New("unit has no standard scale factor")

// scaleFactors maps each standard unit to its size in the family base unit:
// liters for volume, kilograms for weight. Customary values use the exact
// international definitions (1 lb = 0.45359237 kg, 1 gal = 3.785411784 l).
var scaleFactors = map[Kind]float64{
	Teaspoon:   0.00492892159375,
	Tablespoon: 0.01478676478125,
	Cup:        0.2365882365,
	Pint:       0.473176473,
	Quart:      0.946352946,
	Gallon:     3.785411784,
	Liter:      1,
	Centiliter: 0.01,
	Milliliter: 0.001,
	FluidOunce: 0.0295735295625,

	Pound:     0.45359237,
	Ounce:     0.028349523125,
	Gram:      0.001,
	Milligram: 0.000001,
	Kilogram:  1,
}

// volumeKinds and weightKinds fix the listing order for pickers.
var volumeKinds = []Kind{
	Teaspoon, Tablespoon, Cup, Pint, Quart, Gallon,
	Liter, Centiliter, Milliliter, FluidOunce,
}

var weightKinds = []Kind{Pound, Ounce, Gram, Milligram, Kilogram}

// Family reports which family the unit belongs to. Total: every unit maps to
// exactly one family.
func (u Unit) Family() Family {
	switch u.Kind {
	case KindCount:
		return FamilyCount
	case KindOther:
		return FamilyOther
	case Pound, Ounce, Gram, Milligram, Kilogram:
		return FamilyWeight
	default:
		return FamilyVolume
	}
}

// ScaleFactor returns the unit's size relative to its family base unit
// (liter for volume, kilogram for weight). Count and other units have no
// scale factor and return ErrUnsupportedUnit.
func (u Unit) ScaleFactor() (float64, error) {
	f, ok := scaleFactors[u.Kind]
	if !ok {
		return 0, ErrUnsupportedUnit
	}
	return f, nil
}

// String returns the unit's display name. Count units use the plural form.
func (u Unit) String() string {
	switch u.Kind {
	case KindCount:
		return u.Plural
	case KindOther:
		return u.Name
	default:
		return string(u.Kind)
	}
}

// Label returns the display name appropriate for the given amount; count
// units use the singular form exactly at 1.
func (u Unit) Label(amount float64) string {
	if u.Kind == KindCount && amount == 1 {
		return u.Singular
	}
	return u.String()
}

// aliases maps accepted spellings to standard kinds.
var aliases = map[string]Kind{
	"tsp": Teaspoon, "teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"tbsp": Tablespoon, "tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"cup": Cup, "cups": Cup,
	"pt": Pint, "pint": Pint, "pints": Pint,
	"qt": Quart, "quart": Quart, "quarts": Quart,
	"gal": Gallon, "gallon": Gallon, "gallons": Gallon,
	"l": Liter, "liter": Liter, "liters": Liter, "litre": Liter, "litres": Liter,
	"cl": Centiliter, "centiliter": Centiliter, "centiliters": Centiliter,
	"ml": Milliliter, "milliliter": Milliliter, "milliliters": Milliliter,
	"fl-oz": FluidOunce, "floz": FluidOunce, "fluid-ounce": FluidOunce, "fluid-ounces": FluidOunce,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
	"oz": Ounce, "ounce": Ounce, "ounces": Ounce,
	"g": Gram, "gram": Gram, "grams": Gram,
	"mg": Milligram, "milligram": Milligram, "milligrams": Milligram,
	"kg": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,
}

// Parse interprets a unit token. Known names and abbreviations resolve to
// standard units; "singular/plural" resolves to a count unit ("egg/eggs",
// or "egg" doubled when no plural is given); anything else is preserved as
// an other unit rather than rejected.
func Parse(s string) Unit {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		singular := strings.TrimSpace(s[:i])
		plural := strings.TrimSpace(s[i+1:])
		if plural == "" {
			plural = singular
		}
		return Count(singular, plural)
	}
	if k, ok := aliases[strings.ToLower(s)]; ok {
		return Unit{Kind: k}
	}
	return Other(s)
}

// All returns every standard unit plus nothing else; count and other units
// are open-ended and cannot be enumerated.
func All() []Unit {
	units := make([]Unit, 0, len(volumeKinds)+len(weightKinds))
	for _, k := range volumeKinds {
		units = append(units, Unit{Kind: k})
	}
	for _, k := range weightKinds {
		units = append(units, Unit{Kind: k})
	}
	return units
}
