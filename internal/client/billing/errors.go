package billing

import "errors"

var (
	ErrSetupFailed     = errors.New("billing setup failed")
	ErrQueryPurchases  = errors.New("error querying purchases")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrProductNotFound = errors.New("product not found")
	ErrProductDetails  = errors.New("failed to get product details")
	ErrLaunchFailed    = errors.New("failed to launch billing")
)
