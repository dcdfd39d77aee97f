package models

import "time"

// Income records a user's income for a given month, in cents. The latest
// record drives budget and investment capacity calculations.
type Income struct {
	Base
	UserID uint      `gorm:"not null;index" json:"user_id"`
	Amount int64     `gorm:"type:bigint;not null" json:"amount"`
	Month  time.Time `gorm:"not null" json:"month"`
}
