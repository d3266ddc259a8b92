package app

import (
	"context"
	"io"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/models"
	"siparis/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateBatch(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id core.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, userID core.UserID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id core.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID core.UserID) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) OrderConfirmation(ctx context.Context, user *models.User, orders []*order.Order) error {
	args := m.Called(ctx, user, orders)
	return args.Error(0)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(req order.TemplateRequest) (*ports.Document, error) {
	args := m.Called(req)
	doc, _ := args.Get(0).(*ports.Document)
	return doc, args.Error(1)
}

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) Import(r io.Reader) ([]order.OrderLineRecord, error) {
	args := m.Called(r)
	records, _ := args.Get(0).([]order.OrderLineRecord)
	return records, args.Error(1)
}

// passLimiter runs fn directly
type passLimiter struct{ calls int }

func (l *passLimiter) Do(_ context.Context, fn func() error) error {
	l.calls++
	return fn()
}
