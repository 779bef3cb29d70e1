package withdrawal

import "errors"

// Error kinds surfaced to callers. Validation kinds mean the input can be
// fixed by the user; ErrLedgerUnavailable means the store failed mid-call.
var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrAmountOutOfRange       = errors.New("amount out of range")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrInvalidRecipient       = errors.New("invalid recipient")
	ErrUnsupportedMethod      = errors.New("unsupported payment method")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotFound               = errors.New("withdrawal not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrLedgerUnavailable      = errors.New("ledger unavailable")
)
