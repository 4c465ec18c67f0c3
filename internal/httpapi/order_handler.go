package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
)

// OrderEventsPublisher notifies downstream consumers about order activity.
// Publish failures are logged, never surfaced to the caller.
type OrderEventsPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
	PublishOrderStatusChanged(ctx context.Context, orderID string, status order.Status) error
}

type OrderHandler struct {
	orders    order.Repository
	menuItems menu.Repository
	publisher OrderEventsPublisher
	logger    *log.Logger
}

func NewOrderHandler(orders order.Repository, menuItems menu.Repository, publisher OrderEventsPublisher, logger *log.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, menuItems: menuItems, publisher: publisher, logger: logger}
}

// Create validates the submitted items against the catalog, recomputes the
// total from current menu prices, and persists the order as Pending. The
// client-side price snapshots are accepted in the payload but the stored
// amounts are the server's own.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var body struct {
		Items     []order.Item `json:"items"`
		OrderType string       `json:"order_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(body.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order has no items")
		return
	}
	if body.OrderType == "" {
		body.OrderType = order.TypeInhouse
	}
	if !order.ValidType(body.OrderType) {
		writeError(w, http.StatusBadRequest, "invalid order_type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var (
		items []order.Item
		total float64
	)
	for _, it := range body.Items {
		if it.Quantity < 1 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid quantity for menu item %d", it.MenuItemID))
			return
		}

		mi, err := h.menuItems.GetByID(ctx, it.MenuItemID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create order")
			return
		}
		if mi == nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown menu item %d", it.MenuItemID))
			return
		}
		if !mi.Available {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("menu item %q is not available", mi.Name))
			return
		}

		items = append(items, order.Item{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			Price:      mi.Price,
			Quantity:   it.Quantity,
		})
		total += mi.Price * float64(it.Quantity)
	}

	o := &order.Order{
		UserID:      claims.Subject,
		Items:       items,
		TotalAmount: total,
		Status:      order.StatusPending,
		OrderType:   body.OrderType,
	}
	if err := h.orders.Create(ctx, o); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	if err := h.publisher.PublishOrderCreated(ctx, o); err != nil {
		h.logger.Printf("publish OrderCreated for %s: %v", o.ID, err)
	}

	writeJSON(w, http.StatusCreated, map[string]string{"order_id": o.ID})
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.orders.ListByUser(ctx, claims.Subject)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}
