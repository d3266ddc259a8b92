package ports

import (
	"context"

	"siparis/domain/order"
	"siparis/models"
)

// Notifier tells a user their orders were received.
type Notifier interface {
	OrderConfirmation(ctx context.Context, user *models.User, orders []*order.Order) error
}
