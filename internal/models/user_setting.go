package models

import "time"

// Display setting values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	CurrencyUSD = "USD"
	CurrencyVND = "VND"

	DefaultLanguage = "en"
)

// UserSetting holds per-user display preferences. One row per user,
// lazily created on first access with light/en/USD defaults.
type UserSetting struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Theme     string `gorm:"size:16;not null;default:light"`
	Language  string `gorm:"size:8;not null;default:en"`
	Currency  string `gorm:"size:8;not null;default:USD"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
