package budget

// Template is a named allocation preset. Templates are immutable and defined
// at compile time; every template except "custom" sums to exactly 100.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Recommended string     `json:"recommended"`
	Allocations Allocation `json:"allocations"`
}

// Templates is the static template catalog in display order.
var Templates = []Template{
	{
		ID:          "conservative",
		Name:        "Conservative",
		Description: "Focus on savings and stability with minimal discretionary spending",
		Icon:        "🛡️",
		Recommended: "For those prioritizing emergency funds and debt reduction",
		Allocations: Allocation{
			CategoryMortgage:       30,
			CategoryEntertainment:  5,
			CategoryTravel:         3,
			CategoryFood:           15,
			CategoryHealth:         8,
			CategoryUtilities:      10,
			CategoryTransportation: 8,
			CategoryShopping:       5,
			CategoryEducation:      5,
			CategoryInvestment:     8,
			CategorySavings:        3,
		},
	},
	{
		ID:          "balanced",
		Name:        "Balanced",
		Description: "50/30/20 rule - balanced approach to needs, wants, and savings",
		Icon:        "⚖️",
		Recommended: "Popular choice for sustainable long-term financial health",
		Allocations: Allocation{
			CategoryMortgage:       28,
			CategoryEntertainment:  8,
			CategoryTravel:         7,
			CategoryFood:           15,
			CategoryHealth:         7,
			CategoryUtilities:      10,
			CategoryTransportation: 7,
			CategoryShopping:       8,
			CategoryEducation:      3,
			CategoryInvestment:     5,
			CategorySavings:        2,
		},
	},
	{
		ID:          "growth",
		Name:        "Growth",
		Description: "Aggressive savings and investment for wealth building",
		Icon:        "📈",
		Recommended: "For high earners focused on maximizing wealth accumulation",
		Allocations: Allocation{
			CategoryMortgage:       25,
			CategoryEntertainment:  6,
			CategoryTravel:         5,
			CategoryFood:           12,
			CategoryHealth:         7,
			CategoryUtilities:      8,
			CategoryTransportation: 6,
			CategoryShopping:       5,
			CategoryEducation:      4,
			CategoryInvestment:     15,
			CategorySavings:        7,
		},
	},
	{
		ID:          "custom",
		Name:        "Custom",
		Description: "Start from scratch and create your own budget allocation",
		Icon:        "✏️",
		Recommended: "For those with specific financial goals and preferences",
		Allocations: Allocation{
			CategoryMortgage:       0,
			CategoryEntertainment:  0,
			CategoryTravel:         0,
			CategoryFood:           0,
			CategoryHealth:         0,
			CategoryUtilities:      0,
			CategoryTransportation: 0,
			CategoryShopping:       0,
			CategoryEducation:      0,
			CategoryInvestment:     0,
			CategorySavings:        0,
		},
	},
}

// TemplateByID looks up a template in the static catalog.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ApplyTemplate resolves a template and projects its allocations onto the
// given category set: categories the template omits default to 0, and
// template keys outside the set are dropped. Returns ok=false for an
// unknown template id.
func ApplyTemplate(id string, categories []string) (Allocation, bool) {
	tmpl, ok := TemplateByID(id)
	if !ok {
		return nil, false
	}

	out := make(Allocation, len(categories))
	for _, c := range categories {
		out[c] = tmpl.Allocations[c]
	}
	return out, true
}
