package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/benittaafriyie-svg/acity-eats/internal/client"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
)

var (
	// ErrEmptyCart: submission was attempted with zero lines. Caught before
	// any network call.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotAuthenticated: no session credential is present. The caller
	// should send the user to login.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Checkout turns the cart into an order request and submits it. The cart is
// cleared only after the backend acknowledges; any failure leaves it intact
// so the user can retry.
type Checkout struct {
	engine *Engine
	orders *client.OrdersClient
	tokens client.TokenSource
}

func NewCheckout(engine *Engine, orders *client.OrdersClient, tokens client.TokenSource) *Checkout {
	return &Checkout{engine: engine, orders: orders, tokens: tokens}
}

// Submit places the order and returns the backend's order id. The submitted
// prices are the add-time snapshots; they are not refreshed against the
// current catalog.
func (c *Checkout) Submit(ctx context.Context, orderType string) (string, error) {
	lines := c.engine.Lines()
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	if c.tokens.Token() == "" {
		return "", ErrNotAuthenticated
	}

	items := make([]order.Item, 0, len(lines))
	for _, ln := range lines {
		items = append(items, order.Item{
			MenuItemID: ln.ID,
			Quantity:   ln.Quantity,
			Price:      ln.Price,
		})
	}

	created, err := c.orders.Create(ctx, client.OrderRequest{
		Items:     items,
		OrderType: orderType,
	})
	if err != nil {
		return "", err
	}

	if err := c.engine.Clear(); err != nil {
		return created.OrderID, fmt.Errorf("order %s placed but cart not cleared: %w", created.OrderID, err)
	}
	return created.OrderID, nil
}
