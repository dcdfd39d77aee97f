// Package advisor produces risk-tiered investment recommendations from a
// static option catalog, plus the capacity/ROI arithmetic behind them.
package advisor

// RiskTolerance is a user's investment risk tier.
type RiskTolerance string

const (
	Conservative RiskTolerance = "conservative"
	Moderate     RiskTolerance = "moderate"
	Aggressive   RiskTolerance = "aggressive"
)

// ParseRiskTolerance validates a risk tier string.
func ParseRiskTolerance(s string) (RiskTolerance, bool) {
	switch rt := RiskTolerance(s); rt {
	case Conservative, Moderate, Aggressive:
		return rt, true
	}
	return "", false
}

// RiskLevel grades an individual option.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Liquidity grades how quickly an option converts back to cash.
type Liquidity string

const (
	LiquidityLow    Liquidity = "low"
	LiquidityMedium Liquidity = "medium"
	LiquidityHigh   Liquidity = "high"
)

// Option is a catalog entry. The catalog is static and read-only; Recommend
// copies entries before assigning allocations. MinInvestment is in cents.
type Option struct {
	Key            string    `json:"key"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	RiskLevel      RiskLevel `json:"risk_level"`
	ExpectedReturn string    `json:"expected_return"`
	MinInvestment  int64     `json:"min_investment"`
	Allocation     float64   `json:"recommended_allocation"`
	Liquidity      Liquidity `json:"liquidity"`
	TimeHorizon    string    `json:"time_horizon"`
	Pros           []string  `json:"pros"`
	Cons           []string  `json:"cons"`
}

// catalog lists every investment option the advisor knows about.
var catalog = []Option{
	{
		Key:            "fixed_deposit",
		Type:           "fixed_deposit",
		Name:           "Fixed Deposit (FD)",
		Description:    "Guaranteed returns with capital protection from banks",
		RiskLevel:      RiskLow,
		ExpectedReturn: "6-7% p.a.",
		MinInvestment:  100000,
		Liquidity:      LiquidityLow,
		TimeHorizon:    "1-5 years",
		Pros:           []string{"Guaranteed returns", "Capital protection", "No market risk"},
		Cons:           []string{"Low returns", "Penalty on premature withdrawal", "Fixed lock-in period"},
	},
	{
		Key:            "govt_bonds",
		Type:           "bonds",
		Name:           "Government Bonds",
		Description:    "Debt securities issued by government, very safe",
		RiskLevel:      RiskLow,
		ExpectedReturn: "7-8% p.a.",
		MinInvestment:  100000,
		Liquidity:      LiquidityMedium,
		TimeHorizon:    "3-10 years",
		Pros:           []string{"Low risk", "Stable returns", "Government backed"},
		Cons:           []string{"Lower returns than equity", "Interest rate risk", "Long lock-in"},
	},
	{
		Key:            "gold_etf",
		Type:           "gold",
		Name:           "Digital Gold / Gold ETF",
		Description:    "Hedge against inflation, safe haven asset",
		RiskLevel:      RiskLow,
		ExpectedReturn: "8-10% p.a.",
		MinInvestment:  50000,
		Liquidity:      LiquidityHigh,
		TimeHorizon:    "3-5 years",
		Pros:           []string{"Inflation hedge", "High liquidity", "Safe haven"},
		Cons:           []string{"No regular income", "Price volatility", "Storage costs (physical)"},
	},
	{
		Key:            "balanced_funds",
		Type:           "mutual_funds",
		Name:           "Balanced Mutual Funds",
		Description:    "Mix of equity and debt, professionally managed",
		RiskLevel:      RiskMedium,
		ExpectedReturn: "10-12% p.a.",
		MinInvestment:  50000,
		Liquidity:      LiquidityHigh,
		TimeHorizon:    "3-5 years",
		Pros:           []string{"Professional management", "Diversification", "Balanced risk"},
		Cons:           []string{"Management fees", "Market risk", "Exit load"},
	},
	{
		Key:            "index_funds",
		Type:           "mutual_funds",
		Name:           "Index Funds",
		Description:    "Low-cost funds tracking broad market indices",
		RiskLevel:      RiskMedium,
		ExpectedReturn: "12-15% p.a.",
		MinInvestment:  50000,
		Liquidity:      LiquidityHigh,
		TimeHorizon:    "5-10 years",
		Pros:           []string{"Low expense ratio", "Market returns", "Passive investing"},
		Cons:           []string{"Market risk", "No alpha generation", "Volatility"},
	},
	{
		Key:            "large_cap",
		Type:           "stocks",
		Name:           "Large Cap Stocks",
		Description:    "Established companies with large market capitalization",
		RiskLevel:      RiskMedium,
		ExpectedReturn: "12-15% p.a.",
		MinInvestment:  100000,
		Liquidity:      LiquidityHigh,
		TimeHorizon:    "5-10 years",
		Pros:           []string{"High liquidity", "Dividend income", "Capital appreciation"},
		Cons:           []string{"Market volatility", "Requires research", "Company-specific risk"},
	},
	{
		Key:            "mid_small_cap",
		Type:           "stocks",
		Name:           "Mid & Small Cap Stocks",
		Description:    "Higher growth potential with higher risk",
		RiskLevel:      RiskHigh,
		ExpectedReturn: "15-20% p.a.",
		MinInvestment:  100000,
		Liquidity:      LiquidityMedium,
		TimeHorizon:    "7-10 years",
		Pros:           []string{"High growth potential", "Multi-bagger opportunities", "Market inefficiencies"},
		Cons:           []string{"High volatility", "Lower liquidity", "Higher risk"},
	},
	{
		Key:            "reits",
		Type:           "real_estate",
		Name:           "REITs (Real Estate Investment Trusts)",
		Description:    "Invest in real estate without buying property",
		RiskLevel:      RiskMedium,
		ExpectedReturn: "10-14% p.a.",
		MinInvestment:  1000000,
		Liquidity:      LiquidityMedium,
		TimeHorizon:    "5-10 years",
		Pros:           []string{"Regular income", "Real estate exposure", "Professional management"},
		Cons:           []string{"Market risk", "Interest rate sensitivity", "Lower liquidity"},
	},
	{
		Key:            "crypto",
		Type:           "crypto",
		Name:           "Cryptocurrency (Bitcoin, Ethereum)",
		Description:    "High risk, high reward digital assets",
		RiskLevel:      RiskHigh,
		ExpectedReturn: "Variable (20-100%+ or loss)",
		MinInvestment:  50000,
		Liquidity:      LiquidityHigh,
		TimeHorizon:    "3-5 years",
		Pros:           []string{"High growth potential", "24/7 trading", "Decentralized"},
		Cons:           []string{"Extremely volatile", "Regulatory uncertainty", "High risk of loss"},
	},
}

// tierWeights assigns a base allocation weight per option key for each risk
// tier. Binding weights to option keys keeps recommendations stable if the
// catalog is ever reordered. Options absent from a tier's map weigh 0.
var tierWeights = map[RiskTolerance]map[string]float64{
	Conservative: {
		"fixed_deposit":  40,
		"govt_bonds":     30,
		"gold_etf":       20,
		"balanced_funds": 10,
	},
	Moderate: {
		"fixed_deposit":  20,
		"govt_bonds":     25,
		"gold_etf":       25,
		"balanced_funds": 15,
		"index_funds":    15,
	},
	Aggressive: {
		"fixed_deposit":  10,
		"govt_bonds":     10,
		"gold_etf":       15,
		"balanced_funds": 20,
		"index_funds":    20,
		"large_cap":      15,
		"mid_small_cap":  5,
		"reits":          5,
	},
}

// profiles is the static risk profile lookup table.
var profiles = map[RiskTolerance]RiskProfile{
	Conservative: {
		Title:       "Conservative Investor",
		Description: "Prioritizes capital preservation and stable returns over high growth",
		Characteristics: []string{
			"Low risk tolerance",
			"Prefers guaranteed returns",
			"Focuses on capital protection",
			"Suitable for near-term goals",
		},
	},
	Moderate: {
		Title:       "Moderate Investor",
		Description: "Balanced approach between growth and stability",
		Characteristics: []string{
			"Medium risk tolerance",
			"Mix of debt and equity",
			"Long-term wealth creation",
			"Can handle moderate volatility",
		},
	},
	Aggressive: {
		Title:       "Aggressive Investor",
		Description: "Seeks maximum growth with higher risk acceptance",
		Characteristics: []string{
			"High risk tolerance",
			"Equity-focused portfolio",
			"Long investment horizon",
			"Can handle market volatility",
		},
	},
}
