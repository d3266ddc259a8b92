package order

import (
	"math"
	"time"

	"siparis/domain/core"
)

// RoleAdmin sees every order; everyone else sees their own.
const RoleAdmin = "admin"

// Principal is the caller as resolved by the identity collaborator.
type Principal struct {
	UserID core.UserID
	Role   string
}

// IsAdmin reports whether the principal may see all orders.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccess reports whether the principal may read or change o.
func (p Principal) CanAccess(o *Order) bool {
	return p.IsAdmin() || o.UserID == p.UserID
}

// LineItem is a submitted record with its optional quantity.
type LineItem struct {
	OrderLineRecord
	Quantity int `json:"quantity,omitempty"`
}

// Order is a persisted, submitted order line.
type Order struct {
	ID     core.OrderID `json:"id"`
	UserID core.UserID  `json:"userId"`
	OrderLineRecord
	Quantity  int       `json:"quantity"`
	IsOrder   bool      `json:"isOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate rejects an item whose price could not come out of a workbook.
func (item LineItem) Validate() error {
	if !validAmount(item.TotalPrice) {
		return core.NewValidationError("totalPrice", "must be a finite non-negative number")
	}
	return nil
}

// NewOrder builds the order persisted for item. A blank category becomes
// DefaultCategory, purification is dropped for non-prime categories and the
// quantity defaults to 1. Callers run Validate first.
func NewOrder(userID core.UserID, item LineItem, now time.Time) *Order {
	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	record := item.OrderLineRecord
	if IsBlank(record.Category) {
		record.Category = DefaultCategory
	}
	return &Order{
		ID:              core.OrderID(core.NewID()),
		UserID:          userID,
		OrderLineRecord: record.ForExport(),
		Quantity:        quantity,
		IsOrder:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Update is a partial change to an order. Nil fields are left alone.
type Update struct {
	Category     *string  `json:"category"`
	FivePrime    *string  `json:"fivePrime"`
	ThreePrime   *string  `json:"threePrime"`
	Purification *string  `json:"purification"`
	Scale        *string  `json:"scale"`
	TotalPrice   *float64 `json:"totalPrice"`
	Name         *string  `json:"name"`
	Quantity     *int     `json:"quantity"`
}

// IsEmpty reports whether u changes nothing.
func (u Update) IsEmpty() bool {
	return u.Category == nil && u.FivePrime == nil && u.ThreePrime == nil &&
		u.Purification == nil && u.Scale == nil && u.TotalPrice == nil &&
		u.Name == nil && u.Quantity == nil
}

// Apply validates u and applies it to o, re-running the purification rule.
func (u Update) Apply(o *Order, now time.Time) error {
	if u.Category != nil && IsBlank(*u.Category) {
		return core.NewValidationError("category", "cannot be blank")
	}
	if u.TotalPrice != nil && !validAmount(*u.TotalPrice) {
		return core.NewValidationError("totalPrice", "must be a finite non-negative number")
	}
	if u.Quantity != nil && *u.Quantity <= 0 {
		return core.NewValidationError("quantity", "must be positive")
	}

	if u.Category != nil {
		o.Category = *u.Category
	}
	if u.FivePrime != nil {
		o.Modifications.FivePrime = *u.FivePrime
	}
	if u.ThreePrime != nil {
		o.Modifications.ThreePrime = *u.ThreePrime
	}
	if u.Purification != nil {
		o.Purification = StringPtr(*u.Purification)
	}
	if u.Scale != nil {
		o.Scale = *u.Scale
	}
	if u.TotalPrice != nil {
		o.TotalPrice = *u.TotalPrice
	}
	if u.Name != nil {
		o.Name = *u.Name
	}
	if u.Quantity != nil {
		o.Quantity = *u.Quantity
	}
	o.OrderLineRecord = o.ForExport()
	o.UpdatedAt = now
	return nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
