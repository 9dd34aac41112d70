package models

// Categories the treasury uses most often. Categories stay free text; this list
// only seeds sample data and form suggestions.
const (
	CategoryTithes      = "Dízimos"
	CategoryOfferings   = "Ofertas"
	CategoryDonations   = "Doações"
	CategoryEvents      = "Eventos"
	CategoryUtilities   = "Água e Luz"
	CategoryMaintenance = "Manutenção"
	CategoryMissions    = "Missões"
	CategorySalaries    = "Salários"
	CategorySupplies    = "Material"
	CategorySocial      = "Acção Social"
)

// InflowCategories returns the usual categories of money coming in
func InflowCategories() []string {
	return []string{
		CategoryTithes,
		CategoryOfferings,
		CategoryDonations,
		CategoryEvents,
	}
}

// OutflowCategories returns the usual categories of money going out
func OutflowCategories() []string {
	return []string{
		CategoryUtilities,
		CategoryMaintenance,
		CategoryMissions,
		CategorySalaries,
		CategorySupplies,
		CategorySocial,
	}
}

// SuggestedCategories returns every built-in category, inflows first
func SuggestedCategories() []string {
	return append(InflowCategories(), OutflowCategories()...)
}

// IsSuggestedCategory reports whether a category is one of the built-in labels.
// Matching is exact and case-sensitive.
func IsSuggestedCategory(category string) bool {
	for _, c := range SuggestedCategories() {
		if category == c {
			return true
		}
	}
	return false
}
