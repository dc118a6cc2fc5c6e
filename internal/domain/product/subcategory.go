package product

import "strings"

// Bean subcategories are stored as free text in the form "Roast - Origin"
// (e.g. "Dark Roast - Ethiopia"). Filtering in the shop UI needs the parts
// separately.
type SubcategoryParts struct {
	Roast  string
	Origin string
}

func ParseSubcategory(subcategory string) SubcategoryParts {
	parts := strings.SplitN(subcategory, " - ", 2)
	roast := strings.TrimSpace(parts[0])
	origin := ""
	if len(parts) == 2 {
		origin = strings.TrimSpace(parts[1])
	}
	return SubcategoryParts{Roast: roast, Origin: origin}
}
