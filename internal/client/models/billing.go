package models

import (
	"slices"
	"time"
)

// Category separates subscriptions from one-time products.
type Category string

const (
	CategorySubs  Category = "subs"
	CategoryInApp Category = "inapp"
)

type PurchaseState string

const (
	PurchaseStatePurchased   PurchaseState = "PURCHASED"
	PurchaseStatePending     PurchaseState = "PENDING"
	PurchaseStateUnspecified PurchaseState = "UNSPECIFIED_STATE"
)

// ResponseCode is the outcome of a billing operation as reported by the
// purchase-processing service.
type ResponseCode string

const (
	ResponseOK                 ResponseCode = "OK"
	ResponseUserCanceled       ResponseCode = "USER_CANCELED"
	ResponseServiceUnavailable ResponseCode = "SERVICE_UNAVAILABLE"
	ResponseItemUnavailable    ResponseCode = "ITEM_UNAVAILABLE"
	ResponseItemAlreadyOwned   ResponseCode = "ITEM_ALREADY_OWNED"
	ResponseDeveloperError     ResponseCode = "DEVELOPER_ERROR"
	ResponseError              ResponseCode = "ERROR"
)

type Purchase struct {
	OrderID      string
	ProductIDs   []string
	Token        string
	State        PurchaseState
	Acknowledged bool
	PurchaseTime time.Time
}

type Offer struct {
	Token      string
	BasePlanID string
}

type ProductDetails struct {
	ProductID      string
	Category       Category
	Title          string
	Description    string
	FormattedPrice string
	Offers         []Offer
}

// FlowParams describes a purchase flow to launch.
type FlowParams struct {
	Product    ProductDetails
	OfferToken string
}

// LaunchResult is the immediate answer to launching a purchase flow. The
// purchase outcome itself arrives later as a PurchaseUpdate.
type LaunchResult struct {
	Code         ResponseCode
	DebugMessage string
	// CheckoutURL is where the user completes or cancels the flow.
	CheckoutURL string
}

// PurchaseUpdate is delivered asynchronously once a launched flow completes.
type PurchaseUpdate struct {
	Code         ResponseCode
	DebugMessage string
	Purchases    []Purchase
}

// ConnStatus is the lifecycle state of the billing connection.
type ConnStatus int

const (
	Disconnected ConnStatus = iota
	Connecting
	Connected
)

func (s ConnStatus) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// EntitlementState is the process-scoped view of the user's premium status.
// It is never persisted.
type EntitlementState struct {
	Status    ConnStatus
	IsPremium bool
	LastError string
}

func (s EntitlementState) Connected() bool {
	return s.Status == Connected
}

const (
	ProductMonthly   = "qr_scanner_monthly_sub"
	ProductYearly    = "qr_scanner_yearly_sub"
	ProductLifetime  = "qr_scanner_lifetime"
	ProductRemoveAds = "qr_scanner_remove_ads"
)

// CatalogEntry is a purchasable product known to the app.
type CatalogEntry struct {
	ProductID string
	Category  Category
	Title     string
}

// Catalog is the fixed set of products that grant premium.
var Catalog = []CatalogEntry{
	{ProductID: ProductMonthly, Category: CategorySubs, Title: "Monthly Subscription"},
	{ProductID: ProductYearly, Category: CategorySubs, Title: "Yearly Subscription"},
	{ProductID: ProductLifetime, Category: CategoryInApp, Title: "Lifetime Access"},
	{ProductID: ProductRemoveAds, Category: CategoryInApp, Title: "Remove Ads"},
}

// CatalogCategory reports the category of productID and whether it is in the catalog.
func CatalogCategory(productID string) (Category, bool) {
	i := slices.IndexFunc(Catalog, func(e CatalogEntry) bool { return e.ProductID == productID })
	if i < 0 {
		return "", false
	}
	return Catalog[i].Category, true
}

// GrantsPremium reports whether p is purchased and names a catalog product.
func (p Purchase) GrantsPremium() bool {
	if p.State != PurchaseStatePurchased {
		return false
	}
	for _, id := range p.ProductIDs {
		if _, ok := CatalogCategory(id); ok {
			return true
		}
	}
	return false
}
