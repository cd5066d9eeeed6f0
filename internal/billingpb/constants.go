package billingpb

// Product categories.
const (
	CategorySubs  = "subs"
	CategoryInApp = "inapp"
)

// Purchase states.
const (
	StatePurchased   = "PURCHASED"
	StatePending     = "PENDING"
	StateUnspecified = "UNSPECIFIED_STATE"
)

// Response codes carried by LaunchPurchaseFlow and PurchaseUpdate.
const (
	CodeOK                 = "OK"
	CodeUserCanceled       = "USER_CANCELED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeItemUnavailable    = "ITEM_UNAVAILABLE"
	CodeItemAlreadyOwned   = "ITEM_ALREADY_OWNED"
	CodeDeveloperError     = "DEVELOPER_ERROR"
	CodeError              = "ERROR"
)
