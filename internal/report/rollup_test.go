package report

import (
	"testing"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

func uintPtr(v uint) *uint { return &v }

func catIndex(cats ...models.Category) map[uint]models.Category {
	m := make(map[uint]models.Category, len(cats))
	for _, c := range cats {
		m[c.ID] = c
	}
	return m
}

func txWithCategory(amount int64, cat models.Category) models.Transaction {
	return models.Transaction{
		Amount:     decimal.NewFromInt(amount),
		CategoryID: cat.ID,
		Category:   cat,
	}
}

func findBucket(t *testing.T, buckets []CategoryTotal, id uint) CategoryTotal {
	t.Helper()
	for _, b := range buckets {
		if b.CategoryID == id {
			return b
		}
	}
	t.Fatalf("no bucket for category %d in %+v", id, buckets)
	return CategoryTotal{}
}

// A child-category transaction and a parent-category transaction under
// the same parent collapse into one bucket keyed by the parent.
func TestRollupByCategory_ChildRollsUpToParent(t *testing.T) {
	food := models.Category{ID: 1, Name: "Food", Type: models.TypeExpense}
	snacks := models.Category{ID: 2, Name: "Snacks", Type: models.TypeExpense, ParentID: uintPtr(1)}
	cats := catIndex(food, snacks)

	txs := []models.Transaction{
		txWithCategory(100, snacks),
		txWithCategory(50, food),
	}

	out := RollupByCategory(txs, cats)
	if len(out) != 1 {
		t.Fatalf("got %d buckets, want 1: %+v", len(out), out)
	}

	b := out[0]
	if b.CategoryID != food.ID || b.CategoryName != "Food" {
		t.Errorf("bucket keyed by %d/%q, want %d/%q", b.CategoryID, b.CategoryName, food.ID, "Food")
	}
	if !b.Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("total = %s, want 150", b.Total)
	}
	if b.Count != 2 {
		t.Errorf("count = %d, want 2", b.Count)
	}
}

func TestRollupByCategory_TopLevelCategoriesStaySeparate(t *testing.T) {
	food := models.Category{ID: 1, Name: "Food", Type: models.TypeExpense}
	rent := models.Category{ID: 2, Name: "Rent", Type: models.TypeExpense}
	cats := catIndex(food, rent)

	txs := []models.Transaction{
		txWithCategory(30, food),
		txWithCategory(700, rent),
		txWithCategory(20, food),
	}

	out := RollupByCategory(txs, cats)
	if len(out) != 2 {
		t.Fatalf("got %d buckets, want 2: %+v", len(out), out)
	}

	fb := findBucket(t, out, food.ID)
	if !fb.Total.Equal(decimal.NewFromInt(50)) || fb.Count != 2 {
		t.Errorf("food bucket = {%s, %d}, want {50, 2}", fb.Total, fb.Count)
	}
	rb := findBucket(t, out, rent.ID)
	if !rb.Total.Equal(decimal.NewFromInt(700)) || rb.Count != 1 {
		t.Errorf("rent bucket = {%s, %d}, want {700, 1}", rb.Total, rb.Count)
	}
}

// A ParentID pointing outside the user's category set falls back to the
// transaction's own category instead of failing.
func TestRollupByCategory_DanglingParentFallsBack(t *testing.T) {
	orphan := models.Category{ID: 5, Name: "Orphan", Type: models.TypeExpense, ParentID: uintPtr(99)}
	cats := catIndex(orphan)

	out := RollupByCategory([]models.Transaction{txWithCategory(40, orphan)}, cats)
	if len(out) != 1 {
		t.Fatalf("got %d buckets, want 1", len(out))
	}
	if out[0].CategoryID != orphan.ID || out[0].CategoryName != "Orphan" {
		t.Errorf("bucket = %d/%q, want fallback to own category %d/%q",
			out[0].CategoryID, out[0].CategoryName, orphan.ID, "Orphan")
	}
	if !out[0].Total.Equal(decimal.NewFromInt(40)) || out[0].Count != 1 {
		t.Errorf("bucket = {%s, %d}, want {40, 1}", out[0].Total, out[0].Count)
	}
}

func TestRollupByCategory_Empty(t *testing.T) {
	out := RollupByCategory(nil, map[uint]models.Category{})
	if len(out) != 0 {
		t.Errorf("got %d buckets, want 0", len(out))
	}
}
