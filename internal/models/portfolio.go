package models

import "time"

// PortfolioEntry is a position the user holds. Prices are cents per unit;
// CurrentPrice is supplied by the caller, so derived values are only as
// fresh as the last update.
type PortfolioEntry struct {
	Base
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	InvestmentType string    `gorm:"not null" json:"investment_type"`
	Name           string    `gorm:"not null" json:"name"`
	Units          float64   `gorm:"not null" json:"units"`
	BuyPrice       int64     `gorm:"type:bigint;not null" json:"buy_price"`
	CurrentPrice   int64     `gorm:"type:bigint;not null" json:"current_price"`
	PurchaseDate   time.Time `gorm:"not null" json:"purchase_date"`

	// Relationships
	Transactions []InvestmentTransaction `gorm:"foreignKey:PortfolioEntryID" json:"transactions,omitempty"`
}

// InvestmentTransactionType represents the type of investment transaction.
type InvestmentTransactionType string

const (
	InvestmentTransactionBuy  InvestmentTransactionType = "buy"
	InvestmentTransactionSell InvestmentTransactionType = "sell"
)

// InvestmentTransaction records a trade against a portfolio entry.
type InvestmentTransaction struct {
	Base
	UserID           uint                      `gorm:"not null;index" json:"user_id"`
	PortfolioEntryID uint                      `gorm:"not null" json:"portfolio_entry_id"`
	Type             InvestmentTransactionType `gorm:"not null" json:"type"`
	Units            float64                   `gorm:"not null" json:"units"`
	PricePerUnit     int64                     `gorm:"type:bigint;not null" json:"price_per_unit"`
	TotalAmount      int64                     `gorm:"type:bigint;not null" json:"total_amount"`
	Date             time.Time                 `gorm:"not null" json:"date"`
}
