package models

import "time"

// AssetType classifies assets (e.g. "stock" in shares, "gold" in taels).
type AssetType struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:64;not null"`
	Unit        string `gorm:"size:32"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
