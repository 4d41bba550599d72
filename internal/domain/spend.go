package domain

import "github.com/shopspring/decimal"

// SpendTransaction is a card-spend record carrying reward metadata, resolved
// per account in batches keyed by the referenced transaction ids.
type SpendTransaction struct {
	ID        string
	AccountID string

	HasReward bool
	// RewardAmount is in minor units (cents).
	RewardAmount                   int64
	RewardPayoutCustodianAccountID string
}

// RewardValue converts the minor-unit reward amount to a cash value.
func (s *SpendTransaction) RewardValue() decimal.Decimal {
	return decimal.NewFromInt(s.RewardAmount).Shift(-2)
}
