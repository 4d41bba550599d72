package domain

import "errors"

var (
	// Directory errors
	ErrAccountNotFound       = errors.New("account not found in directory")
	ErrNoAccountTypeLabel    = errors.New("no label for account type")
	ErrNoCustodianAccounts   = errors.New("account has no custodian accounts")
	ErrPayoutAccountNotFound = errors.New("no account holds reward payout custodian account")

	// Enrichment errors
	ErrFundsTransferNotResolved    = errors.New("funds transfer not resolved for page")
	ErrSpendTransactionNotResolved = errors.New("spend transaction not resolved for page")

	// Input errors
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)
