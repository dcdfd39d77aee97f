package budget

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		allocation     Allocation
		wantValid      bool
		wantTotal      float64
		wantDifference float64
	}{
		{
			name: "exact_100_with_minimums",
			allocation: Allocation{
				"mortgage": 30, "food": 20, "health": 10, "entertainment": 10,
				"travel": 10, "investment": 10, "savings": 10,
			},
			wantValid:      true,
			wantTotal:      100,
			wantDifference: 0,
		},
		{
			name: "over_allocated",
			allocation: Allocation{
				"mortgage": 40, "food": 30, "health": 20, "entertainment": 15,
				"travel": 10, "investment": 10, "savings": 10,
			},
			wantValid:      false,
			wantTotal:      135,
			wantDifference: -35,
		},
		{
			name: "floating_point_tolerance",
			allocation: Allocation{
				"mortgage": 30.5, "food": 19.5, "health": 10, "entertainment": 10,
				"travel": 10, "investment": 10, "savings": 10,
			},
			wantValid:      true,
			wantTotal:      100,
			wantDifference: 0,
		},
		{
			name: "investment_below_minimum",
			allocation: Allocation{
				"mortgage": 35, "food": 20, "health": 10, "entertainment": 10,
				"travel": 10, "investment": 5, "savings": 10,
			},
			wantValid:      false,
			wantTotal:      100,
			wantDifference: 0,
		},
		{
			name: "savings_below_minimum",
			allocation: Allocation{
				"mortgage": 36, "food": 20, "health": 10, "entertainment": 10,
				"travel": 10, "investment": 10, "savings": 4,
			},
			wantValid:      false,
			wantTotal:      100,
			wantDifference: 0,
		},
		{
			name:           "empty_allocation",
			allocation:     Allocation{},
			wantValid:      false,
			wantTotal:      0,
			wantDifference: 100,
		},
		{
			name: "missing_policy_keys",
			allocation: Allocation{
				"mortgage": 50, "food": 50,
			},
			wantValid:      false,
			wantTotal:      100,
			wantDifference: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.allocation)
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if got.Difference != tt.wantDifference {
				t.Errorf("Difference = %v, want %v", got.Difference, tt.wantDifference)
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	a := Allocation{
		"mortgage": 30, "food": 20, "health": 10, "entertainment": 10,
		"travel": 10, "investment": 10, "savings": 10,
	}

	first := Validate(a)
	second := Validate(a)
	if first != second {
		t.Errorf("expected identical results, got %+v then %+v", first, second)
	}
}
