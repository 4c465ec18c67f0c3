package menu

// Filter groups shown to the user. "Meals" and "Snacks" are umbrella labels
// over the backend categories and deliberately overlap (Burger and Sandwich
// belong to both).
const (
	FilterAll    = "All"
	FilterMeals  = "Meals"
	FilterSnacks = "Snacks"
	FilterDrinks = "Drinks"
)

var filterGroups = map[string][]string{
	FilterMeals:  {CategoryMeals, CategoryNoodles, CategorySandwich, CategoryBurger},
	FilterSnacks: {CategoryBurger, CategorySandwich},
	FilterDrinks: {CategoryDrinks},
}

// Filter returns the items matching the selected category, preserving catalog
// order. Unknown labels fall back to an exact category match.
func Filter(items []Item, category string) []Item {
	if category == FilterAll {
		return items
	}

	group, ok := filterGroups[category]
	if !ok {
		group = []string{category}
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		for _, c := range group {
			if it.Category == c {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
