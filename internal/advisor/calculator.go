package advisor

import "math"

// Capacity summarizes how much of the investment budget remains deployable.
// All money fields are cents.
type Capacity struct {
	TotalIncome          int64   `json:"total_income"`
	InvestmentBudget     int64   `json:"investment_budget"`
	InvestmentPercentage float64 `json:"investment_percentage"`
	CurrentlyInvested    int64   `json:"currently_invested"`
	AvailableToInvest    int64   `json:"available_to_invest"`
	MonthlyCapacity      int64   `json:"monthly_investment_capacity"`
}

// CalculateCapacity derives the investment capacity from income, the
// budget's investment percentage, and the amount already invested.
// AvailableToInvest is floored at zero; income is taken as given.
func CalculateCapacity(income int64, investmentPercentage float64, totalInvested int64) Capacity {
	budget := int64(math.Round(float64(income) * investmentPercentage / 100))
	available := budget - totalInvested
	if available < 0 {
		available = 0
	}

	return Capacity{
		TotalIncome:          income,
		InvestmentBudget:     budget,
		InvestmentPercentage: investmentPercentage,
		CurrentlyInvested:    totalInvested,
		AvailableToInvest:    available,
		MonthlyCapacity:      budget,
	}
}

// ROIResult reports return on investment. ROI is an alias of
// ProfitPercentage; Profit is in cents.
type ROIResult struct {
	ROI              float64 `json:"roi"`
	Profit           int64   `json:"profit"`
	ProfitPercentage float64 `json:"profit_percentage"`
}

// CalculateROI computes profit and percentage return. A zero invested
// amount yields 0 percent rather than a division by zero.
func CalculateROI(totalInvested, currentValue int64) ROIResult {
	profit := currentValue - totalInvested

	var pct float64
	if totalInvested > 0 {
		pct = float64(profit) / float64(totalInvested) * 100
	}

	return ROIResult{ROI: pct, Profit: profit, ProfitPercentage: pct}
}

// FutureValue projects a lump sum (cents) with annual compounding.
func FutureValue(amount int64, annualRatePct float64, years int) int64 {
	return int64(math.Round(float64(amount) * math.Pow(1+annualRatePct/100, float64(years))))
}

// LumpSumResult projects a single upfront investment. All fields are cents.
type LumpSumResult struct {
	TotalInvested    int64 `json:"total_invested"`
	EstimatedReturns int64 `json:"estimated_returns"`
	TotalValue       int64 `json:"total_value"`
}

// CalculateLumpSum projects a one-time investment (cents) to its future
// value with annual compounding.
func CalculateLumpSum(amount int64, annualRatePct float64, years int) LumpSumResult {
	total := FutureValue(amount, annualRatePct, years)
	return LumpSumResult{
		TotalInvested:    amount,
		EstimatedReturns: total - amount,
		TotalValue:       total,
	}
}

// SIPResult projects a systematic investment plan. All fields are cents.
type SIPResult struct {
	TotalInvested    int64 `json:"total_invested"`
	EstimatedReturns int64 `json:"estimated_returns"`
	TotalValue       int64 `json:"total_value"`
}

// CalculateSIP projects the future value of fixed monthly contributions
// (cents) with monthly compounding. A zero rate degenerates to the sum of
// contributions.
func CalculateSIP(monthlyAmount int64, annualRatePct float64, years int) SIPResult {
	months := years * 12
	totalInvested := monthlyAmount * int64(months)

	monthlyRate := annualRatePct / 12 / 100
	if monthlyRate == 0 {
		return SIPResult{TotalInvested: totalInvested, TotalValue: totalInvested}
	}

	futureValue := float64(monthlyAmount) *
		((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate) *
		(1 + monthlyRate)

	total := int64(math.Round(futureValue))
	return SIPResult{
		TotalInvested:    totalInvested,
		EstimatedReturns: total - totalInvested,
		TotalValue:       total,
	}
}
