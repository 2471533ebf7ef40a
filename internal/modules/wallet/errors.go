package wallet

import "errors"

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("withdrawal exceeds available balance")
	ErrNoWallet          = errors.New("seller has no wallet")
)
