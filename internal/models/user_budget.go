package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"fintrack/internal/budget"
)

// AllocationColumn stores a budget.Allocation as a JSON column.
type AllocationColumn budget.Allocation

// Value implements driver.Valuer.
func (a AllocationColumn) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *AllocationColumn) Scan(value interface{}) error {
	if value == nil {
		*a = AllocationColumn{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AllocationColumn", value)
	}
	return json.Unmarshal(data, a)
}

// UserBudget holds a user's single percentage allocation across spending
// categories. Saving replaces the previous allocation; there is no history.
type UserBudget struct {
	Base
	UserID     uint             `gorm:"not null;uniqueIndex" json:"user_id"`
	Allocation AllocationColumn `gorm:"type:jsonb;not null" json:"allocation"`
}
