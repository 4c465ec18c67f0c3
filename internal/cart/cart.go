package cart

import (
	"fmt"

	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
)

// Line is one menu item held in the pending order. Name and price are copied
// from the catalog at add time: a later price change on the server does not
// touch a line already in the cart.
type Line struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Engine owns the session's cart. Every mutation writes the whole cart back
// through the store, last writer wins.
type Engine struct {
	store Store
	lines []Line
}

// NewEngine loads the persisted cart from the store. A store with no saved
// cart yields an empty engine.
func NewEngine(store Store) (*Engine, error) {
	lines, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Engine{store: store, lines: lines}, nil
}

// Add puts qty of the item in the cart, incrementing the existing line when
// one is already there. Quantities below 1 are treated as 1.
func (e *Engine) Add(item menu.Item, qty int) error {
	if qty < 1 {
		qty = 1
	}

	for i := range e.lines {
		if e.lines[i].ID == item.ID {
			e.lines[i].Quantity += qty
			return e.persist()
		}
	}

	e.lines = append(e.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
	})
	return e.persist()
}

// Remove deletes the line for the given menu item id. Removing an absent id
// is a no-op.
func (e *Engine) Remove(id int64) error {
	kept := e.lines[:0]
	for _, ln := range e.lines {
		if ln.ID != id {
			kept = append(kept, ln)
		}
	}
	if len(kept) == len(e.lines) {
		return nil
	}
	e.lines = kept
	return e.persist()
}

// UpdateQuantity adds delta to the line's quantity. A result of zero or less
// removes the line. An absent id is a no-op. There is no upper bound.
func (e *Engine) UpdateQuantity(id int64, delta int) error {
	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines[i].Quantity += delta
			if e.lines[i].Quantity <= 0 {
				return e.Remove(id)
			}
			return e.persist()
		}
	}
	return nil
}

// Clear empties the cart and persists the empty state.
func (e *Engine) Clear() error {
	e.lines = nil
	return e.persist()
}

// Totals derives the price summary from the current lines. Discount is a
// placeholder for future promotions and is always zero.
func (e *Engine) Totals() Totals {
	var subtotal float64
	for _, ln := range e.lines {
		subtotal += ln.Price * float64(ln.Quantity)
	}
	discount := 0.0
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}

// ItemCount is the sum of quantities across all lines.
func (e *Engine) ItemCount() int {
	count := 0
	for _, ln := range e.lines {
		count += ln.Quantity
	}
	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) persist() error {
	if err := e.store.Save(e.lines); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
