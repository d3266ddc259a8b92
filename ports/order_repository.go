package ports

import (
	"context"

	"siparis/domain/core"
	"siparis/domain/order"
)

// OrderRepository persists submitted order lines.
type OrderRepository interface {
	// CreateBatch stores all orders or none of them.
	CreateBatch(ctx context.Context, orders []*order.Order) error

	// GetByID returns core.ErrOrderNotFound when id is unknown.
	GetByID(ctx context.Context, id core.OrderID) (*order.Order, error)

	// List returns orders newest first. An empty userID lists every user.
	List(ctx context.Context, userID core.UserID) ([]*order.Order, error)

	Update(ctx context.Context, o *order.Order) error

	Delete(ctx context.Context, id core.OrderID) error
}
