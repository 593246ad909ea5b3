package rations

import (
	"errors"
)

// Sentinel errors for the ration flows. Handlers map these to the
// client-facing error codes.
var (
	ErrItemNotFound      = errors.New("ration item not found")
	ErrShopNotFound      = errors.New("shop not found")
	ErrForbidden         = errors.New("member does not belong to this family")
	ErrInsufficientQuota = errors.New("insufficient quota remaining")
	ErrInsufficientStock = errors.New("insufficient stock at shop")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrPaymentUnknown    = errors.New("payment outcome unknown")
)
