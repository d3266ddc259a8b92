package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/ports"

	"github.com/jmoiron/sqlx"
)

// orderRow is the order_lines table layout
type orderRow struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Category     string         `db:"category"`
	FivePrime    string         `db:"five_prime"`
	ThreePrime   string         `db:"three_prime"`
	Purification sql.NullString `db:"purification"`
	Scale        string         `db:"scale"`
	TotalPrice   float64        `db:"total_price"`
	Name         string         `db:"name"`
	Quantity     int            `db:"quantity"`
	IsOrder      bool           `db:"is_order"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

const orderColumns = `id, user_id, category, five_prime, three_prime, purification, scale,
	total_price, name, quantity, is_order, created_at, updated_at`

func toOrderRow(o *order.Order) orderRow {
	row := orderRow{
		ID:         o.ID.String(),
		UserID:     o.UserID.String(),
		Category:   o.Category,
		FivePrime:  o.Modifications.FivePrime,
		ThreePrime: o.Modifications.ThreePrime,
		Scale:      o.Scale,
		TotalPrice: o.TotalPrice,
		Name:       o.Name,
		Quantity:   o.Quantity,
		IsOrder:    o.IsOrder,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.Purification != nil {
		row.Purification = sql.NullString{String: *o.Purification, Valid: true}
	}
	return row
}

func (r orderRow) toOrder() *order.Order {
	o := &order.Order{
		ID:     core.OrderID(r.ID),
		UserID: core.UserID(r.UserID),
		OrderLineRecord: order.OrderLineRecord{
			Category: r.Category,
			Modifications: order.Modifications{
				FivePrime:  r.FivePrime,
				ThreePrime: r.ThreePrime,
			},
			Scale:      r.Scale,
			TotalPrice: r.TotalPrice,
			Name:       r.Name,
		},
		Quantity:  r.Quantity,
		IsOrder:   r.IsOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Purification.Valid {
		o.Purification = order.StringPtr(r.Purification.String)
	}
	return o
}

// OrderRepositoryImpl implements OrderRepository for PostgreSQL
type OrderRepositoryImpl struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new PostgreSQL order repository
func NewOrderRepository(db *sqlx.DB) ports.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// CreateBatch inserts every order in one transaction
func (r *OrderRepositoryImpl) CreateBatch(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, o := range orders {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO order_lines (`+orderColumns+`)
			VALUES (:id, :user_id, :category, :five_prime, :three_prime, :purification, :scale,
				:total_price, :name, :quantity, :is_order, :created_at, :updated_at)
		`, toOrderRow(o))
		if err != nil {
			return fmt.Errorf("failed to insert order %s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit orders: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id core.OrderID) (*order.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+orderColumns+`
		FROM order_lines
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", core.ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return row.toOrder(), nil
}

// List returns orders newest first, for one user or for everyone
func (r *OrderRepositoryImpl) List(ctx context.Context, userID core.UserID) ([]*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM order_lines`
	var args []interface{}
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID.String())
	}
	query += ` ORDER BY created_at DESC`

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toOrder())
	}
	return orders, nil
}

// Update overwrites the mutable columns of an order
func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE order_lines
		SET category = :category, five_prime = :five_prime, three_prime = :three_prime,
			purification = :purification, scale = :scale, total_price = :total_price,
			name = :name, quantity = :quantity, updated_at = :updated_at
		WHERE id = :id
	`, toOrderRow(o))
	if err != nil {
		return err
	}
	return expectOneRow(res, o.ID)
}

// Delete removes an order
func (r *OrderRepositoryImpl) Delete(ctx context.Context, id core.OrderID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM order_lines WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	return expectOneRow(res, id)
}

func expectOneRow(res sql.Result, id core.OrderID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", core.ErrOrderNotFound, id)
	}
	return nil
}
