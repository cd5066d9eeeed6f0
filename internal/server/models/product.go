package models

import "fmt"

const (
	CategorySubs  = "subs"
	CategoryInApp = "inapp"
)

// Product is a sellable catalog item. Prices are kept in micros of Currency.
type Product struct {
	ID          string `db:"id"`
	Category    string `db:"category"`
	Title       string `db:"title"`
	Description string `db:"description"`
	PriceMicros int64  `db:"price_micros"`
	Currency    string `db:"currency"`

	// BasePlanID is set for subscriptions only.
	BasePlanID string `db:"base_plan_id"`
}

// FormattedPrice renders the price as shown to users, e.g. "$1.99".
func (p Product) FormattedPrice() string {
	symbol := p.Currency + " "
	if p.Currency == "USD" {
		symbol = "$"
	}
	return fmt.Sprintf("%s%d.%02d", symbol, p.PriceMicros/1_000_000, (p.PriceMicros%1_000_000)/10_000)
}
