package models

import (
	"time"

	"fintrack/internal/advisor"
)

// User represents the user model in the database.
type User struct {
	Base
	Email            string                `gorm:"uniqueIndex;not null" json:"email"`
	Password         string                `gorm:"not null" json:"-"`
	FirstName        string                `json:"first_name"`
	LastName         string                `json:"last_name"`
	RiskTolerance    advisor.RiskTolerance `gorm:"not null;default:'moderate'" json:"risk_tolerance"`
	IsActive         bool                  `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string                `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time            `json:"last_login_at,omitempty"`

	// Relationships
	Incomes           []Income           `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Transactions      []Transaction      `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	RecurringExpenses []RecurringExpense `gorm:"foreignKey:UserID" json:"recurring_expenses,omitempty"`
	PortfolioEntries  []PortfolioEntry   `gorm:"foreignKey:UserID" json:"portfolio_entries,omitempty"`
	Goals             []Goal             `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
