package models

import (
	"time"

	"fintrack/internal/recurrence"
)

// RecurringExpense is a rule that periodically materializes expense
// transactions. NextOccurrence is the only field the scheduler mutates;
// deactivating via IsActive pauses generation without losing the rule.
type RecurringExpense struct {
	Base
	UserID         uint                 `gorm:"not null;index" json:"user_id"`
	CategoryID     uint                 `gorm:"not null" json:"category_id"`
	Amount         int64                `gorm:"type:bigint;not null" json:"amount"`
	Description    string               `json:"description"`
	Frequency      recurrence.Frequency `gorm:"not null" json:"frequency"`
	StartDate      time.Time            `gorm:"not null" json:"start_date"`
	EndDate        *time.Time           `json:"end_date,omitempty"`
	NextOccurrence time.Time            `gorm:"not null;index" json:"next_occurrence"`
	IsActive       bool                 `gorm:"default:true" json:"is_active"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
