package report

import (
	"testing"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAsset_EffectivePrice(t *testing.T) {
	withSell := models.Asset{
		PurchasePrice:    decimal.NewFromInt(10),
		CurrentSellPrice: decPtr("12.5"),
	}
	if !withSell.EffectivePrice().Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("effective price = %s, want current sell price 12.5", withSell.EffectivePrice())
	}

	withoutSell := models.Asset{PurchasePrice: decimal.NewFromInt(10)}
	if !withoutSell.EffectivePrice().Equal(decimal.NewFromInt(10)) {
		t.Errorf("effective price = %s, want purchase price 10", withoutSell.EffectivePrice())
	}
}

// An asset created without prices has purchase price defaulted to 1, so
// quantity 10 values at 10.
func TestAsset_TotalValue_DefaultedPrices(t *testing.T) {
	a := models.Asset{
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(1),
	}
	if !a.TotalValue().Equal(decimal.NewFromInt(10)) {
		t.Errorf("total value = %s, want 10", a.TotalValue())
	}
}

func TestTotalAssetValue(t *testing.T) {
	assets := []models.Asset{
		{Quantity: decimal.NewFromInt(2), PurchasePrice: decimal.NewFromInt(100)},                                // 200
		{Quantity: decimal.RequireFromString("0.5"), PurchasePrice: decimal.NewFromInt(10), CurrentSellPrice: decPtr("30")}, // 15
		{Quantity: decimal.NewFromInt(3), PurchasePrice: decimal.NewFromInt(1)},                                  // 3
	}

	total := TotalAssetValue(assets)
	if !total.Equal(decimal.NewFromInt(218)) {
		t.Errorf("total asset value = %s, want 218", total)
	}
}

func TestTotalAssetValue_Empty(t *testing.T) {
	if v := TotalAssetValue(nil); !v.IsZero() {
		t.Errorf("total asset value = %s, want 0", v)
	}
}
