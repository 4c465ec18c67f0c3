package menu

import "time"

// Backend catalog categories. The client-side filter groups (see Filter)
// are a superset of these labels.
const (
	CategoryMeals    = "Meals"
	CategoryNoodles  = "Noodles"
	CategorySandwich = "Sandwich"
	CategoryBurger   = "Burger"
	CategoryDrinks   = "Drinks"
)

type Item struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Available     bool     `json:"available"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DiscountPercent returns the rounded percentage off the original price,
// or 0 when the item is not discounted.
func (it Item) DiscountPercent() int {
	if it.OriginalPrice == nil || *it.OriginalPrice <= 0 {
		return 0
	}
	pct := (1 - it.Price / *it.OriginalPrice) * 100
	return int(pct + 0.5)
}
