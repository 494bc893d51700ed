// Package engine resolves ingredient quantity conversions, chaining recorded
// ingredient facts with standard unit conversions when no direct ratio exists.
package engine

import "github.com/rcliao/cookconv/internal/unit"

// Fact is one recorded ingredient ratio: FromAmount of FromUnit equals
// ToAmount of ToUnit (e.g. 1 cup = 120 g). Facts are undirected for
// resolution: the engine reads them forward or backward with the ratio
// inverted. Amounts must be positive; the store enforces that before a fact
// is ever handed to the engine.
type Fact struct {
	FromAmount float64
	FromUnit   unit.Unit
	ToAmount   float64
	ToUnit     unit.Unit
}

// Convert resolves amount from one unit to another using an ingredient's
// recorded facts. Resolution is tried in a fixed order so results are
// deterministic for ambiguous data:
//
//  1. identity (from == to)
//  2. standard conversion for same-family volume/weight units; ingredient
//     facts are never consulted for these
//  3. direct fact lookup, first match in list order
//  4. reverse fact lookup with the ratio inverted
//  5. depth-first search over facts as undirected edges, edges in list order,
//     forward before reverse, snapping onto the target's family via a
//     standard conversion when possible
//
// The first path found wins, which is not necessarily the shortest or most
// accurate when the facts describe inconsistent routes; that is a data
// quality issue the engine deliberately does not arbitrate. ok is false when
// no path exists, an expected condition rather than an error.
func Convert(amount float64, from, to unit.Unit, facts []Fact) (float64, bool) {
	if from == to {
		return amount, true
	}

	if fam := from.Family(); fam == to.Family() &&
		(fam == unit.FamilyVolume || fam == unit.FamilyWeight) {
		return unit.Convert(amount, from, to)
	}

	for _, f := range facts {
		if f.FromUnit == from && f.ToUnit == to {
			return amount / f.FromAmount * f.ToAmount, true
		}
	}
	for _, f := range facts {
		if f.FromUnit == to && f.ToUnit == from {
			return amount / f.ToAmount * f.FromAmount, true
		}
	}

	visited := map[unit.Unit]bool{from: true}
	return chain(amount, from, to, facts, visited)
}

// chain walks the fact graph depth-first from cur. visited is threaded
// through the whole search and never reset, so cycles and self-loops
// terminate and each unit is expanded at most once.
func chain(amount float64, cur, to unit.Unit, facts []Fact, visited map[unit.Unit]bool) (float64, bool) {
	if fam := cur.Family(); fam == to.Family() &&
		(fam == unit.FamilyVolume || fam == unit.FamilyWeight) {
		if v, ok := unit.Convert(amount, cur, to); ok {
			return v, true
		}
	}

	for _, f := range facts {
		if f.FromUnit == cur && !visited[f.ToUnit] {
			next := amount / f.FromAmount * f.ToAmount
			if f.ToUnit == to {
				return next, true
			}
			visited[f.ToUnit] = true
			if v, ok := chain(next, f.ToUnit, to, facts, visited); ok {
				return v, true
			}
		}
		if f.ToUnit == cur && !visited[f.FromUnit] {
			next := amount / f.ToAmount * f.FromAmount
			if f.FromUnit == to {
				return next, true
			}
			visited[f.FromUnit] = true
			if v, ok := chain(next, f.FromUnit, to, facts, visited); ok {
				return v, true
			}
		}
	}
	return 0, false
}
