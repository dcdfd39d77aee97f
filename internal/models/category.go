package models

// Category is a spending bucket used for budgeting and expense
// classification. Categories form a global catalog seeded by migration;
// users do not create their own.
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Icon string `json:"icon"`

	// Relationships
	Transactions      []Transaction      `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	RecurringExpenses []RecurringExpense `gorm:"foreignKey:CategoryID" json:"recurring_expenses,omitempty"`
}
