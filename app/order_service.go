package app

import (
	"context"
	"fmt"
	"time"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/internal"
	"siparis/ports"
)

// OrderService handles order submission and the order CRUD operations
type OrderService struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	notifier ports.Notifier
	logger   *internal.Logger
	now      func() time.Time
}

// SubmitResult is what a submission returns to the caller
type SubmitResult struct {
	Orders  []*order.Order `json:"products"`
	Summary order.Summary  `json:"summary"`
}

// NewOrderService creates an order service
func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, notifier ports.Notifier, logger *internal.Logger) *OrderService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &OrderService{
		orders:   orders,
		users:    users,
		notifier: notifier,
		logger:   logger.WithComponent("OrderService"),
		now:      time.Now,
	}
}

// Submit persists every item as an order for the caller and sends one
// confirmation. A failed confirmation is logged; the orders stay stored.
func (s *OrderService) Submit(ctx context.Context, principal order.Principal, items []order.LineItem) (*SubmitResult, error) {
	if len(items) == 0 {
		return nil, core.ErrNoProducts
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	orders := make([]*order.Order, 0, len(items))
	records := make([]order.OrderLineRecord, 0, len(items))
	for _, item := range items {
		o := order.NewOrder(principal.UserID, item, now)
		orders = append(orders, o)
		records = append(records, o.OrderLineRecord)
	}

	if err := s.orders.CreateBatch(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to store %d orders: %w", len(orders), err)
	}
	s.logger.Info("user %s submitted %d orders", principal.UserID, len(orders))

	if s.notifier != nil {
		if err := s.notifier.OrderConfirmation(ctx, user, orders); err != nil {
			s.logger.Error("order confirmation for %s failed: %v", user.Email, err)
		}
	}

	return &SubmitResult{Orders: orders, Summary: order.Summarize(records)}, nil
}

// List returns every order for admins and the caller's own orders otherwise
func (s *OrderService) List(ctx context.Context, principal order.Principal) ([]*order.Order, error) {
	userID := principal.UserID
	if principal.IsAdmin() {
		userID = ""
	}
	return s.orders.List(ctx, userID)
}

// Get returns one order the caller may access
func (s *OrderService) Get(ctx context.Context, principal order.Principal, id core.OrderID) (*order.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(o) {
		return nil, fmt.Errorf("%w: order %s", core.ErrForbidden, id)
	}
	return o, nil
}

// Update applies a partial change to an order
func (s *OrderService) Update(ctx context.Context, principal order.Principal, id core.OrderID, upd order.Update) (*order.Order, error) {
	if upd.IsEmpty() {
		return nil, core.NewValidationError("body", "no fields to update")
	}

	o, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := upd.Apply(o, s.now()); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, principal order.Principal, id core.OrderID) error {
	if _, err := s.Get(ctx, principal, id); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order %s deleted by %s", id, principal.UserID)
	return nil
}
