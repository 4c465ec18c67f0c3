package client

import (
	"context"
	"strconv"

	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
)

type MenuClient struct{ c *Client }

func NewMenuClient(c *Client) *MenuClient { return &MenuClient{c: c} }

// GetAll fetches the full catalog. Category filtering happens locally, see
// menu.Filter.
func (mc *MenuClient) GetAll(ctx context.Context) ([]menu.Item, error) {
	var items []menu.Item
	if err := mc.c.get(ctx, "/api/menu", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (mc *MenuClient) GetByID(ctx context.Context, id int64) (*menu.Item, error) {
	var item menu.Item
	if err := mc.c.get(ctx, "/api/menu/"+strconv.FormatInt(id, 10), &item); err != nil {
		return nil, err
	}
	return &item, nil
}
