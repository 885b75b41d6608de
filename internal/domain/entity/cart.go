package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one (user, phone, quantity) line of a shopping cart.
// At most one line exists per (user, phone) pair; adding the same phone
// again increments the quantity instead of creating a duplicate row.
type CartItem struct {
	ID        uuid.UUID // The unique identifier for the cart line.
	UserID    uuid.UUID // The owning user.
	PhoneID   uuid.UUID // The phone this line refers to.
	Quantity  uint      // Number of units, always >= 1.
	DateAdded time.Time // Timestamp of when the line was first created.

	Phone *Phone // Loaded association, nil unless preloaded.
}

// LineTotal returns quantity times the phone's current price.
// It is derived, never stored. A line without its phone loaded totals zero.
func (c *CartItem) LineTotal() decimal.Decimal {
	if c.Phone == nil {
		return decimal.Zero
	}

	return c.Phone.Price.Mul(decimal.NewFromUint64(uint64(c.Quantity)))
}

// CartTotal sums the line totals of the given cart lines.
// An empty cart totals zero.
func CartTotal(items []*CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return total
}
