package advisor

import (
	"math"
	"sort"
)

// Goal optionally tunes recommendations toward an investment objective.
type Goal string

const (
	GoalNone           Goal = ""
	GoalWealthCreation Goal = "wealth_creation"
	GoalRetirement     Goal = "retirement"
	GoalShortTerm      Goal = "short_term"
	GoalBalanced       Goal = "balanced"
)

// RiskProfile describes a risk tier for presentation.
type RiskProfile struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
}

// Profile returns the static profile for a risk tier.
func Profile(riskTolerance RiskTolerance) (RiskProfile, bool) {
	p, ok := profiles[riskTolerance]
	return p, ok
}

// Recommend returns the options suitable for a risk tier and available
// amount (cents), weighted and sorted descending by recommended allocation.
func Recommend(riskTolerance RiskTolerance, availableAmount int64) []Option {
	return RecommendForGoal(riskTolerance, availableAmount, GoalNone)
}

// RecommendForGoal is Recommend with an optional investment goal adjustment.
//
// The pipeline: filter the catalog by risk tier, assign the tier's base
// weights, apply the goal adjustment, drop options whose minimum investment
// exceeds the available amount, re-normalize the remaining weights to 100,
// and sort descending by weight. An empty result is not an error, and if
// every remaining weight is 0 the options are returned with 0 allocations.
func RecommendForGoal(riskTolerance RiskTolerance, availableAmount int64, goal Goal) []Option {
	weights := tierWeights[riskTolerance]

	recommendations := make([]Option, 0, len(catalog))
	for _, opt := range catalog {
		if !inTier(opt, riskTolerance) {
			continue
		}
		opt.Allocation = weights[opt.Key]
		recommendations = append(recommendations, opt)
	}

	switch goal {
	case GoalRetirement:
		for i := range recommendations {
			t := recommendations[i].Type
			if t == "mutual_funds" || t == "stocks" {
				recommendations[i].Allocation += 5
			}
		}
	case GoalShortTerm:
		liquid := recommendations[:0]
		for _, opt := range recommendations {
			if opt.Liquidity == LiquidityHigh || opt.Liquidity == LiquidityMedium {
				liquid = append(liquid, opt)
			}
		}
		recommendations = liquid
	}

	affordable := recommendations[:0]
	for _, opt := range recommendations {
		if opt.MinInvestment <= availableAmount {
			affordable = append(affordable, opt)
		}
	}
	recommendations = affordable

	var totalWeight float64
	for _, opt := range recommendations {
		totalWeight += opt.Allocation
	}
	if totalWeight > 0 {
		for i := range recommendations {
			recommendations[i].Allocation = math.Round(recommendations[i].Allocation / totalWeight * 100)
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Allocation > recommendations[j].Allocation
	})

	return recommendations
}

// inTier reports whether an option belongs to a risk tier's universe:
// conservative takes low-risk options plus medium-risk mutual funds,
// moderate takes low and medium risk, aggressive takes everything.
func inTier(opt Option, riskTolerance RiskTolerance) bool {
	switch riskTolerance {
	case Conservative:
		return opt.RiskLevel == RiskLow || (opt.RiskLevel == RiskMedium && opt.Type == "mutual_funds")
	case Moderate:
		return opt.RiskLevel == RiskLow || opt.RiskLevel == RiskMedium
	case Aggressive:
		return true
	}
	return false
}

// RecommendedAmounts splits a total amount (cents) across recommendations
// proportionally to their allocations, keyed by option key.
func RecommendedAmounts(recommendations []Option, totalAmount int64) map[string]int64 {
	amounts := make(map[string]int64, len(recommendations))
	for _, opt := range recommendations {
		amounts[opt.Key] = int64(math.Round(float64(totalAmount) * opt.Allocation / 100))
	}
	return amounts
}
