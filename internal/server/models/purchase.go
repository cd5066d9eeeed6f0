package models

import "time"

const (
	StatePending   = "pending"
	StatePurchased = "purchased"
)

// Purchase is one launched purchase flow. It is pending until the checkout
// is confirmed and is removed when the checkout is cancelled.
type Purchase struct {
	ID           string    `db:"id"`
	OrderID      string    `db:"order_id"`
	AccountID    string    `db:"account_id"`
	ProductID    string    `db:"product_id"`
	Token        string    `db:"token"`
	State        string    `db:"state"`
	Acknowledged bool      `db:"acknowledged"`
	CreatedAt    time.Time `db:"created_at"`

	// PurchasedAt is zero while the purchase is pending.
	PurchasedAt time.Time `db:"purchased_at"`
}
