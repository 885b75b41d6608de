package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an Order.
type OrderStatus string

// The fixed order status enum. Transitions are permissive: an authorized
// actor may set any status from any other, including out of terminal states.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is a member of the fixed enum.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// StatusMessage returns the human-readable text used when notifying the
// order owner about a status change.
func (s OrderStatus) StatusMessage() string {
	switch s {
	case OrderStatusPending:
		return "awaiting processing"
	case OrderStatusProcessing:
		return "being processed"
	case OrderStatusShipped:
		return "being shipped"
	case OrderStatusCompleted:
		return "delivered successfully"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return ""
	}
}

// PaymentMethod is the label recorded for how an order will be paid.
// No transaction processing happens; the label is informational.
type PaymentMethod string

// The fixed payment method enum.
const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodBanking PaymentMethod = "banking"
	PaymentMethodMoMo    PaymentMethod = "momo"
	PaymentMethodVNPay   PaymentMethod = "vnpay"
)

// IsValid reports whether the payment method is a member of the fixed enum.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCOD, PaymentMethodBanking, PaymentMethodMoMo, PaymentMethodVNPay:
		return true
	default:
		return false
	}
}

// Order is a placed order. It is created only by checkout, mutated only by
// status transitions, and never deleted in normal flow. Total is snapshotted
// at creation and not recomputed from the items afterwards.
type Order struct {
	ID            uuid.UUID       // The unique identifier for the order.
	UserID        uuid.UUID       // The owning user.
	FullName      string          // Recipient full name supplied at checkout.
	Phone         string          // Recipient contact phone number.
	Address       string          // Delivery address.
	OrderNote     string          // Optional free-text note, may be empty.
	Status        OrderStatus     // Current lifecycle state, initially pending.
	PaymentMethod PaymentMethod   // Payment label recorded at checkout.
	Total         decimal.Decimal // Sum of item quantity x price at checkout time.
	CreatedAt     time.Time       // Immutable creation timestamp.

	Items []*OrderItem // Loaded association, nil unless preloaded.
}

// OrderItem is one line of a placed order. Price is a snapshot of the
// phone's price at order time, decoupled from later catalog edits.
type OrderItem struct {
	ID       uuid.UUID       // The unique identifier for the order item.
	OrderID  uuid.UUID       // The owning order.
	PhoneID  uuid.UUID       // The product this line refers to.
	Quantity uint            // Number of units ordered.
	Price    decimal.Decimal // Unit price snapshot taken at checkout.

	Phone *Phone // Loaded association, nil unless preloaded.
}

// LineTotal returns quantity times the snapshotted unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromUint64(uint64(i.Quantity)))
}
