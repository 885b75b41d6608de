package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Phone represents a single catalog product. It is owned by exactly one Brand.
// Once referenced by an OrderItem its price lives on in the item's snapshot,
// so administrative edits here never rewrite past orders.
type Phone struct {
	ID          uuid.UUID       // The unique identifier for the phone.
	BrandID     uuid.UUID       // Foreign key to the owning Brand.
	Name        string          // The phone's display name.
	Description string          // A free-text description of the phone.
	Price       decimal.Decimal // Current unit price, fixed-point with 2 fraction digits.
	Stock       uint            // Units on hand. Informational until checkout, where it is enforced.
	Available   bool            // Whether the phone is shown as purchasable.
	ImageURL    string          // Reference to the product image.
	CreatedAt   time.Time       // Timestamp of when the phone was added to the catalog.

	Brand *Brand // Loaded association, nil unless preloaded.
}
