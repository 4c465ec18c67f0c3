package client

import (
	"context"

	"github.com/benittaafriyie-svg/acity-eats/internal/order"
)

type OrdersClient struct{ c *Client }

func NewOrdersClient(c *Client) *OrdersClient { return &OrdersClient{c: c} }

// OrderRequest is the create-order payload: cart lines flattened to their
// submission shape plus the delivery mode.
type OrderRequest struct {
	Items     []order.Item `json:"items"`
	OrderType string       `json:"order_type"`
}

type OrderCreated struct {
	OrderID string `json:"order_id"`
}

func (oc *OrdersClient) Create(ctx context.Context, req OrderRequest) (*OrderCreated, error) {
	var created OrderCreated
	if err := oc.c.post(ctx, "/api/orders", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListMine returns the calling user's orders, newest first.
func (oc *OrdersClient) ListMine(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := oc.c.get(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
