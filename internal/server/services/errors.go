package services

import "errors"

var (
	ErrInvalidCategory  = errors.New("invalid product category")
	ErrCheckoutExpired  = errors.New("checkout expired")
	ErrAlreadyCompleted = errors.New("purchase already completed")
)
