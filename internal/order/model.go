package order

import "time"

// Delivery mode attached to a submitted order.
const (
	TypeInhouse = "Inhouse"
	TypeTakeout = "Takeout"
)

type Item struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Items       []Item    `json:"items"`
	TotalAmount float64   `json:"total_amount"`
	Status      Status    `json:"status"`
	OrderType   string    `json:"order_type"`
	CreatedAt   time.Time `json:"created_at"`

	// Populated on admin listings only.
	UserName   string `json:"user_name,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	InhouseOrders int     `json:"inhouse_orders"`
	TakeoutOrders int     `json:"takeout_orders"`
}

func ValidType(t string) bool {
	return t == TypeInhouse || t == TypeTakeout
}
