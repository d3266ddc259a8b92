package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

func newTestOrderService() (*OrderService, *MockOrderRepository, *MockUserRepository, *MockNotifier) {
	orders := &MockOrderRepository{}
	users := &MockUserRepository{}
	notifier := &MockNotifier{}
	svc := NewOrderService(orders, users, notifier, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, orders, users, notifier
}

func customer() order.Principal {
	return order.Principal{UserID: core.UserID(core.NewID()), Role: "user"}
}

func TestSubmitRejectsEmptyList(t *testing.T) {
	svc, orders, users, _ := newTestOrderService()

	_, err := svc.Submit(context.Background(), customer(), nil)
	assert.ErrorIs(t, err, core.ErrNoProducts)
	orders.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestSubmitRejectsInvalidPrice(t *testing.T) {
	svc, orders, users, _ := newTestOrderService()

	items := []order.LineItem{
		{OrderLineRecord: order.OrderLineRecord{Category: "prime", TotalPrice: 10}},
		{OrderLineRecord: order.OrderLineRecord{Category: "", TotalPrice: -5}},
	}
	_, err := svc.Submit(context.Background(), customer(), items)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	orders.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestSubmitUnknownUser(t *testing.T) {
	svc, orders, users, _ := newTestOrderService()
	p := customer()
	users.On("GetUserByID", mock.Anything, p.UserID).Return(nil, core.ErrUserNotFound)

	_, err := svc.Submit(context.Background(), p, []order.LineItem{{OrderLineRecord: order.OrderLineRecord{Category: "prime"}}})
	assert.ErrorIs(t, err, core.ErrUserNotFound)
	orders.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestSubmitStoresGatedOrdersAndNotifies(t *testing.T) {
	svc, orders, users, notifier := newTestOrderService()
	p := customer()
	user := &models.User{ID: p.UserID, Email: "ayse@example.com", Username: "ayse"}

	users.On("GetUserByID", mock.Anything, p.UserID).Return(user, nil)
	orders.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	notifier.On("OrderConfirmation", mock.Anything, user, mock.Anything).Return(nil)

	items := []order.LineItem{
		{OrderLineRecord: order.OrderLineRecord{Category: "prime", Purification: order.StringPtr("HPLC"), TotalPrice: 10, Name: "a"}},
		{OrderLineRecord: order.OrderLineRecord{Category: "probe", Purification: order.StringPtr("PAGE"), TotalPrice: 5, Name: "b"}, Quantity: 3},
	}

	res, err := svc.Submit(context.Background(), p, items)
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)

	first, second := res.Orders[0], res.Orders[1]
	assert.Equal(t, "HPLC", *first.Purification)
	assert.Nil(t, second.Purification, "purification only kept for prime")
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, 3, second.Quantity)
	assert.True(t, first.IsOrder)
	assert.Equal(t, p.UserID, first.UserID)
	assert.Equal(t, fixedNow, first.CreatedAt)

	assert.Equal(t, 2, res.Summary.Count)
	assert.Equal(t, 15.0, res.Summary.TotalPrice)

	orders.AssertCalled(t, "CreateBatch", mock.Anything, res.Orders)
	notifier.AssertExpectations(t)
}

func TestSubmitKeepsOrdersWhenNotificationFails(t *testing.T) {
	svc, orders, users, notifier := newTestOrderService()
	p := customer()
	users.On("GetUserByID", mock.Anything, p.UserID).Return(&models.User{Email: "x@example.com"}, nil)
	orders.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	notifier.On("OrderConfirmation", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("relay down"))

	res, err := svc.Submit(context.Background(), p, []order.LineItem{{OrderLineRecord: order.OrderLineRecord{Category: "prime"}}})
	require.NoError(t, err)
	assert.Len(t, res.Orders, 1)
}

func TestSubmitStorageFailure(t *testing.T) {
	svc, orders, users, notifier := newTestOrderService()
	p := customer()
	boom := errors.New("connection reset")
	users.On("GetUserByID", mock.Anything, p.UserID).Return(&models.User{Email: "x@example.com"}, nil)
	orders.On("CreateBatch", mock.Anything, mock.Anything).Return(boom)

	_, err := svc.Submit(context.Background(), p, []order.LineItem{{OrderLineRecord: order.OrderLineRecord{Category: "prime"}}})
	assert.ErrorIs(t, err, boom)
	notifier.AssertNotCalled(t, "OrderConfirmation", mock.Anything, mock.Anything, mock.Anything)
}

func TestListScopesByRole(t *testing.T) {
	svc, orders, _, _ := newTestOrderService()
	p := customer()
	admin := order.Principal{UserID: core.UserID(core.NewID()), Role: order.RoleAdmin}

	orders.On("List", mock.Anything, p.UserID).Return([]*order.Order{}, nil)
	orders.On("List", mock.Anything, core.UserID("")).Return([]*order.Order{{}}, nil)

	own, err := svc.List(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, own)

	all, err := svc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, orders, _, _ := newTestOrderService()
	owner := customer()
	o := order.NewOrder(owner.UserID, order.LineItem{OrderLineRecord: order.OrderLineRecord{Category: "prime"}}, fixedNow)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)

	got, err := svc.Get(context.Background(), owner, o.ID)
	require.NoError(t, err)
	assert.Same(t, o, got)

	_, err = svc.Get(context.Background(), customer(), o.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = svc.Get(context.Background(), order.Principal{UserID: "someone", Role: order.RoleAdmin}, o.ID)
	assert.NoError(t, err)
}

func TestUpdateAppliesAndStores(t *testing.T) {
	svc, orders, _, _ := newTestOrderService()
	owner := customer()
	o := order.NewOrder(owner.UserID, order.LineItem{OrderLineRecord: order.OrderLineRecord{
		Category: "prime", Purification: order.StringPtr("HPLC"), Name: "before",
	}}, fixedNow.Add(-time.Hour))
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	orders.On("Update", mock.Anything, o).Return(nil)

	name, category := "after", "probe"
	got, err := svc.Update(context.Background(), owner, o.ID, order.Update{Name: &name, Category: &category})
	require.NoError(t, err)

	assert.Equal(t, "after", got.Name)
	assert.Nil(t, got.Purification, "leaving prime drops purification")
	assert.Equal(t, fixedNow, got.UpdatedAt)
	orders.AssertExpectations(t)
}

func TestUpdateRejectsEmptyAndInvalid(t *testing.T) {
	svc, orders, _, _ := newTestOrderService()
	owner := customer()
	o := order.NewOrder(owner.UserID, order.LineItem{OrderLineRecord: order.OrderLineRecord{Category: "prime"}}, fixedNow)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)

	_, err := svc.Update(context.Background(), owner, o.ID, order.Update{})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	negative := -1.0
	_, err = svc.Update(context.Background(), owner, o.ID, order.Update{TotalPrice: &negative})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	svc, orders, _, _ := newTestOrderService()
	owner := customer()
	o := order.NewOrder(owner.UserID, order.LineItem{OrderLineRecord: order.OrderLineRecord{Category: "prime"}}, fixedNow)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	orders.On("Delete", mock.Anything, o.ID).Return(nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), customer(), o.ID), core.ErrForbidden)
	orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	require.NoError(t, svc.Delete(context.Background(), owner, o.ID))
	orders.AssertCalled(t, "Delete", mock.Anything, o.ID)
}

func TestGetNotFound(t *testing.T) {
	svc, orders, _, _ := newTestOrderService()
	id := core.OrderID(core.NewID())
	orders.On("GetByID", mock.Anything, id).Return(nil, core.ErrOrderNotFound)

	_, err := svc.Get(context.Background(), customer(), id)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
