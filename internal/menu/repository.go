package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

const itemColumns = `id, name, price, original_price, category, description, image_url, available, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }, it *Item) error {
	var (
		original    sql.NullFloat64
		description sql.NullString
		imageURL    sql.NullString
	)
	err := row.Scan(&it.ID, &it.Name, &it.Price, &original, &it.Category,
		&description, &imageURL, &it.Available, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return err
	}
	if original.Valid {
		v := original.Float64
		it.OriginalPrice = &v
	}
	it.Description = description.String
	it.ImageURL = imageURL.String
	return nil
}

func (r *repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM menu_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select menu_items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan menu_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (*Item, error) {
	var it Item
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id)
	if err := scanItem(row, &it); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select menu_item: %w", err)
	}
	return &it, nil
}

func (r *repo) Create(ctx context.Context, it *Item) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO menu_items (name, price, original_price, category, description, image_url, available)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		it.Name, it.Price, it.OriginalPrice, it.Category,
		nullable(it.Description), nullable(it.ImageURL), it.Available,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert menu_item: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, it *Item) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items
         SET name = $1, price = $2, original_price = $3, category = $4,
             description = $5, image_url = $6, available = $7, updated_at = NOW()
         WHERE id = $8`,
		it.Name, it.Price, it.OriginalPrice, it.Category,
		nullable(it.Description), nullable(it.ImageURL), it.Available, it.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update menu_item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete menu_item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
