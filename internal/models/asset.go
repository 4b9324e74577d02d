package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset represents an owned holding (stock, gold, currency, ...).
// TotalValue is derived at read time and never stored.
type Asset struct {
	ID               uint             `gorm:"primaryKey"`
	UserID           uint             `gorm:"index;not null"`
	AssetTypeID      uint             `gorm:"index;not null"`
	Name             string           `gorm:"size:64;not null"`
	Quantity         decimal.Decimal  `gorm:"type:decimal(20,8);not null"`
	PurchasePrice    decimal.Decimal  `gorm:"type:decimal(20,2);not null"`
	CurrentSellPrice *decimal.Decimal `gorm:"type:decimal(20,2)"`
	PurchaseDate     time.Time        `gorm:"index"`
	Note             string           `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	AssetType AssetType `gorm:"constraint:OnDelete:RESTRICT"`
}

// EffectivePrice returns the current sell price when set, else the
// purchase price.
func (a *Asset) EffectivePrice() decimal.Decimal {
	if a.CurrentSellPrice != nil {
		return *a.CurrentSellPrice
	}
	return a.PurchasePrice
}

// TotalValue returns quantity times effective price.
func (a *Asset) TotalValue() decimal.Decimal {
	return a.Quantity.Mul(a.EffectivePrice())
}
