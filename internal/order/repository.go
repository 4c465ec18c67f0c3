package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (id, user_id, total_amount, status, order_type)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING created_at`,
		o.ID, o.UserID, o.TotalAmount, o.Status, o.OrderType,
	).Scan(&o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, menu_item_id, name, price, quantity)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), o.ID, it.MenuItemID, it.Name, it.Price, it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, total_amount, status, order_type, created_at
         FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.user_id, o.total_amount, o.status, o.order_type, o.created_at,
                u.name, u.room_number
         FROM orders o
         JOIN users u ON u.id = o.user_id
         ORDER BY o.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			o    Order
			room sql.NullString
		)
		err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
			&o.OrderType, &o.CreatedAt, &o.UserName, &room)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.RoomNumber = room.String
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) UpdateStatus(ctx context.Context, orderID string, status Status) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, orderID,
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx,
		`SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'Pending'),
            COALESCE(SUM(total_amount), 0),
            COUNT(*) FILTER (WHERE order_type = 'Inhouse'),
            COUNT(*) FILTER (WHERE order_type = 'Takeout')
         FROM orders`,
	).Scan(&s.TotalOrders, &s.PendingOrders, &s.TotalRevenue, &s.InhouseOrders, &s.TakeoutOrders)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &Stats{}, nil
		}
		return nil, fmt.Errorf("select stats: %w", err)
	}
	return &s, nil
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	var orders []Order
	for rows.Next() {
		var o Order
		err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.OrderType, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return orders, nil
}

func (r *repo) loadItems(ctx context.Context, orders []Order) error {
	for i := range orders {
		rows, err := r.db.QueryContext(ctx,
			`SELECT menu_item_id, name, price, quantity
             FROM order_items WHERE order_id = $1`,
			orders[i].ID,
		)
		if err != nil {
			return fmt.Errorf("select order_items: %w", err)
		}
		for rows.Next() {
			var it Item
			if err := rows.Scan(&it.MenuItemID, &it.Name, &it.Price, &it.Quantity); err != nil {
				rows.Close()
				return fmt.Errorf("scan order_item: %w", err)
			}
			orders[i].Items = append(orders[i].Items, it)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("rows: %w", err)
		}
		rows.Close()
	}
	return nil
}
