package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single expense or income record.
// Date drives report range membership; CreatedAt is the stable
// tiebreaker for ordering records on the same date.
type Transaction struct {
	ID         uint            `gorm:"primaryKey"`
	UserID     uint            `gorm:"index;not null"`
	CategoryID uint            `gorm:"index;not null"`
	Type       string          `gorm:"size:16;index;not null"` // income / expense
	Amount     decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Date       time.Time       `gorm:"index;not null"` // when the transaction happened
	Note       string          `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	Category Category `gorm:"constraint:OnDelete:RESTRICT"`
}
