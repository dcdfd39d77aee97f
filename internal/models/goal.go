package models

import "time"

// Goal is a savings target with a deadline. Amounts are cents.
type Goal struct {
	Base
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Name          string    `gorm:"not null" json:"name"`
	TargetAmount  int64     `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64     `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      time.Time `gorm:"not null" json:"deadline"`
	Category      string    `gorm:"not null" json:"category"`
	Description   string    `json:"description"`
}
