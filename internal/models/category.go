package models

import "time"

// Transaction/category type values.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Category represents an income/expense category. Categories form a
// two-level tree per user per type: a category with a non-nil ParentID
// must reference a top-level category of the same type.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:64;not null"`
	Type      string `gorm:"size:16;index;not null"` // income / expense
	ParentID  *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Parent *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
}
