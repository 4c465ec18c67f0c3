package menu

// MealPeriod maps an hour of day (0-23) to the promo banner meal.
// Breakfast: 23:00-10:59, Lunch: 11:00-15:59, Dinner: 16:00-22:59.
func MealPeriod(hour int) string {
	switch {
	case hour >= 11 && hour < 16:
		return "Lunch"
	case hour >= 16 && hour < 23:
		return "Dinner"
	default:
		return "Breakfast"
	}
}
