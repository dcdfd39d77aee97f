// Package budget implements percentage-based budget allocation rules:
// validation of a proposed allocation against the 100% total constraint and
// policy minimums, and a static catalog of allocation templates.
package budget

import "math"

// Recognized category keys. Allocations may carry arbitrary keys, but these
// are the categories the application budgets against.
const (
	CategoryMortgage       = "mortgage"
	CategoryEntertainment  = "entertainment"
	CategoryTravel         = "travel"
	CategoryFood           = "food"
	CategoryHealth         = "health"
	CategoryUtilities      = "utilities"
	CategoryTransportation = "transportation"
	CategoryShopping       = "shopping"
	CategoryEducation      = "education"
	CategoryInvestment     = "investment"
	CategorySavings        = "savings"
)

// Categories lists every recognized category key in display order.
var Categories = []string{
	CategoryMortgage,
	CategoryEntertainment,
	CategoryTravel,
	CategoryFood,
	CategoryHealth,
	CategoryUtilities,
	CategoryTransportation,
	CategoryShopping,
	CategoryEducation,
	CategoryInvestment,
	CategorySavings,
}

// Policy minimums enforced on every saved allocation.
const (
	MinInvestmentPct = 10.0
	MinSavingsPct    = 5.0
)

// DefaultAllocation returns the allocation assumed for users who have not
// saved one. It totals 100 and satisfies the policy minimums.
func DefaultAllocation() Allocation {
	return Allocation{
		CategoryMortgage:      25,
		CategoryEntertainment: 15,
		CategoryTravel:        10,
		CategoryFood:          15,
		CategoryHealth:        10,
		CategoryInvestment:    15,
		CategorySavings:       10,
	}
}

// totalTolerance absorbs binary floating-point representation error when
// allocations mix integer and decimal percentages (e.g. 30.5 + 19.5).
const totalTolerance = 0.01

// Allocation maps a category key to its percentage of income.
type Allocation map[string]float64

// ValidationResult reports whether an allocation satisfies the budget rules.
// Difference is how far the total is from 100 (positive means under-allocated).
type ValidationResult struct {
	Valid      bool    `json:"valid"`
	Total      float64 `json:"total"`
	Difference float64 `json:"difference"`
}

// Validate checks an allocation against the 100% total constraint and the
// investment/savings policy minimums. It never fails; all findings are
// carried in the result. An empty allocation totals 0 and is invalid.
func Validate(a Allocation) ValidationResult {
	var total float64
	for _, pct := range a {
		total += pct
	}

	valid := math.Abs(total-100) < totalTolerance &&
		a[CategoryInvestment] >= MinInvestmentPct &&
		a[CategorySavings] >= MinSavingsPct

	return ValidationResult{
		Valid:      valid,
		Total:      total,
		Difference: 100 - total,
	}
}
