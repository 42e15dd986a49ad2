package transaction

import "errors"

// Service errors. Each maps 1:1 to a response the handler reports once; none
// of them is retried here, every rejection is deterministic for its input.
var (
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrBalanceUnavailable = errors.New("balance check failed")
)
