package client

import (
	"context"
	"strconv"

	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
)

// AdminClient wraps the admin-only endpoints. Authorization is enforced
// server-side from the bearer credential; callers without admin rights get
// the backend's error back.
type AdminClient struct{ c *Client }

func NewAdminClient(c *Client) *AdminClient { return &AdminClient{c: c} }

func (ad *AdminClient) ListOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := ad.c.get(ctx, "/api/admin/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (ad *AdminClient) UpdateOrderStatus(ctx context.Context, orderID string, status order.Status) error {
	req := map[string]string{"status": string(status)}
	return ad.c.put(ctx, "/api/admin/orders/"+orderID+"/status", req, nil)
}

func (ad *AdminClient) CreateMenuItem(ctx context.Context, it *menu.Item) error {
	return ad.c.post(ctx, "/api/admin/menu", it, it)
}

func (ad *AdminClient) UpdateMenuItem(ctx context.Context, it *menu.Item) error {
	return ad.c.put(ctx, "/api/admin/menu/"+strconv.FormatInt(it.ID, 10), it, it)
}

func (ad *AdminClient) DeleteMenuItem(ctx context.Context, id int64) error {
	return ad.c.delete(ctx, "/api/admin/menu/"+strconv.FormatInt(id, 10))
}

func (ad *AdminClient) Stats(ctx context.Context) (*order.Stats, error) {
	var s order.Stats
	if err := ad.c.get(ctx, "/api/admin/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
