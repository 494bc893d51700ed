package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcliao/cookconv/internal/engine"
	"github.com/rcliao/cookconv/internal/unit"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func addFlour(t *testing.T, s *SQLiteStore) {
	t.Helper()
	ctx := context.Background()
	if _, err := s.AddIngredient(ctx, AddIngredientParams{Name: "flour", Category: "baking"}); err != nil {
		t.Fatalf("add flour: %v", err)
	}
	_, err := s.AddConversion(ctx, AddConversionParams{
		Ingredient: "flour",
		FromAmount: 1, FromUnit: unit.Std(unit.Cup),
		ToAmount: 120, ToUnit: unit.Std(unit.Gram),
	})
	if err != nil {
		t.Fatalf("add conversion: %v", err)
	}
}

func TestAddAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	addFlour(t, s)

	ing, err := s.Get(ctx, "flour")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ing.ID == "" {
		t.Error("expected non-empty ID")
	}
	if ing.Category != "baking" {
		t.Errorf("expected category 'baking', got %q", ing.Category)
	}
	if len(ing.Conversions) != 1 {
		t.Fatalf("expected 1 conversion, got %d", len(ing.Conversions))
	}
	c := ing.Conversions[0]
	if c.FromUnit != unit.Std(unit.Cup) || c.ToUnit != unit.Std(unit.Gram) {
		t.Errorf("units not persisted correctly: %+v", c)
	}
	if c.FromAmount != 1 || c.ToAmount != 120 {
		t.Errorf("amounts not persisted correctly: %+v", c)
	}
}

func TestDuplicateName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.AddIngredient(ctx, AddIngredientParams{Name: "salt"})
	if _, err := s.AddIngredient(ctx, AddIngredientParams{Name: "salt"}); err == nil {
		t.Error("expected error for duplicate name")
	}
	if _, err := s.AddIngredient(ctx, AddIngredientParams{}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestRejectsNonPositiveAmounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.AddIngredient(ctx, AddIngredientParams{Name: "flour"})

	for _, amounts := range [][2]float64{{0, 120}, {1, 0}, {-1, 120}, {1, -5}} {
		_, err := s.AddConversion(ctx, AddConversionParams{
			Ingredient: "flour",
			FromAmount: amounts[0], FromUnit: unit.Std(unit.Cup),
			ToAmount: amounts[1], ToUnit: unit.Std(unit.Gram),
		})
		if err == nil {
			t.Errorf("expected rejection of amounts %v", amounts)
		}
	}
}

func TestConversionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.AddIngredient(ctx, AddIngredientParams{Name: "butter"})

	pairs := [][2]float64{{1, 14}, {2, 29}, {3, 43}}
	for _, p := range pairs {
		s.AddConversion(ctx, AddConversionParams{
			Ingredient: "butter",
			FromAmount: p[0], FromUnit: unit.Std(unit.Tablespoon),
			ToAmount: p[1], ToUnit: unit.Std(unit.Gram),
		})
	}

	ing, _ := s.Get(ctx, "butter")
	if len(ing.Conversions) != 3 {
		t.Fatalf("expected 3 conversions, got %d", len(ing.Conversions))
	}
	for i, c := range ing.Conversions {
		if c.Seq != i+1 {
			t.Errorf("conversion %d: expected seq %d, got %d", i, i+1, c.Seq)
		}
		if c.FromAmount != pairs[i][0] {
			t.Errorf("conversion %d out of order: %+v", i, c)
		}
	}
}

func TestCountUnitRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.AddIngredient(ctx, AddIngredientParams{Name: "egg"})

	egg := unit.Count("egg", "eggs")
	s.AddConversion(ctx, AddConversionParams{
		Ingredient: "egg",
		FromAmount: 1, FromUnit: egg,
		ToAmount: 50, ToUnit: unit.Std(unit.Gram),
	})

	ing, _ := s.Get(ctx, "egg")
	if len(ing.Conversions) != 1 {
		t.Fatalf("expected 1 conversion, got %d", len(ing.Conversions))
	}
	if ing.Conversions[0].FromUnit != egg {
		t.Errorf("count unit names lost in storage: %+v", ing.Conversions[0].FromUnit)
	}

	// A stored ingredient drives the engine directly.
	got, ok := engine.Convert(3, egg, unit.Std(unit.Gram), ing.Facts())
	if !ok || got != 150 {
		t.Errorf("expected 150, got %v (ok=%v)", got, ok)
	}
}

func TestSkipsMalformedUnits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	addFlour(t, s)

	ing, _ := s.Get(ctx, "flour")
	s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, ingredient_id, seq, from_amount, from_unit, to_amount, to_unit, created_at)
		 VALUES ('bad', ?, 2, 1, 'not json', 7, '{}', '2026-01-01T00:00:00Z')`, ing.ID)

	ing, err := s.Get(ctx, "flour")
	if err != nil {
		t.Fatalf("get with bad row: %v", err)
	}
	if len(ing.Conversions) != 1 {
		t.Errorf("expected malformed row to be skipped, got %d conversions", len(ing.Conversions))
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.AddIngredient(ctx, AddIngredientParams{Name: "flour", Category: "baking"})
	s.AddIngredient(ctx, AddIngredientParams{Name: "bread flour", Category: "baking", System: true})
	s.AddIngredient(ctx, AddIngredientParams{Name: "milk", Category: "dairy"})

	all, _ := s.List(ctx, ListParams{})
	if len(all) != 3 {
		t.Errorf("expected 3, got %d", len(all))
	}

	baking, _ := s.List(ctx, ListParams{Category: "baking"})
	if len(baking) != 2 {
		t.Errorf("expected 2 baking, got %d", len(baking))
	}

	byName, _ := s.List(ctx, ListParams{Name: "flour"})
	if len(byName) != 2 {
		t.Errorf("expected 2 matching 'flour', got %d", len(byName))
	}

	system, _ := s.List(ctx, ListParams{System: "true"})
	if len(system) != 1 || system[0].Name != "bread flour" {
		t.Errorf("expected only the system entry, got %v", system)
	}
}

func TestRm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	addFlour(t, s)

	if err := s.Rm(ctx, RmParams{Name: "flour", Seq: 1}); err != nil {
		t.Fatalf("rm fact: %v", err)
	}
	ing, _ := s.Get(ctx, "flour")
	if len(ing.Conversions) != 0 {
		t.Errorf("expected 0 conversions after fact delete, got %d", len(ing.Conversions))
	}

	if err := s.Rm(ctx, RmParams{Name: "flour"}); err != nil {
		t.Fatalf("rm ingredient: %v", err)
	}
	if _, err := s.Get(ctx, "flour"); err == nil {
		t.Error("expected error after delete")
	}

	if err := s.Rm(ctx, RmParams{Name: "flour"}); err == nil {
		t.Error("expected error for missing ingredient")
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	addFlour(t, src)

	exported, err := src.ExportAll(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestStore(t)
	imported, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported != 1 {
		t.Errorf("expected 1 imported, got %d", imported)
	}

	ing, err := dst.Get(ctx, "flour")
	if err != nil {
		t.Fatalf("get after import: %v", err)
	}
	if len(ing.Conversions) != 1 || ing.Conversions[0].ToAmount != 120 {
		t.Errorf("facts not imported: %+v", ing.Conversions)
	}

	// Re-import skips the existing name.
	again, _ := dst.Import(ctx, exported)
	if again != 0 {
		t.Errorf("expected 0 on re-import, got %d", again)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()

	s.AddIngredient(ctx, AddIngredientParams{Name: "flour", Category: "baking"})
	s.AddConversion(ctx, AddConversionParams{
		Ingredient: "flour",
		FromAmount: 1, FromUnit: unit.Std(unit.Cup),
		ToAmount: 120, ToUnit: unit.Std(unit.Gram),
	})

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Ingredients != 1 || st.Conversions != 1 {
		t.Errorf("unexpected counts: %+v", st)
	}
	if len(st.Categories) != 1 || st.Categories[0].Category != "baking" {
		t.Errorf("unexpected categories: %+v", st.Categories)
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}
