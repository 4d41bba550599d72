package domain

import "github.com/shopspring/decimal"

// Amount sign flags as reported by the activity feed. An absent flag is
// treated as positive.
const (
	AmountSignPositive = "positive"
	AmountSignNegative = "negative"
)

// Classification keys referenced outside the dispatch tables.
const (
	KeyDepositEFT   = "DEPOSIT/EFT"
	KeySpendPrepaid = "SPEND/PREPAID"
)

// Activity is one raw transaction-like event from the activity feed.
// Immutable once fetched; scoped to the page that produced it.
type Activity struct {
	CanonicalID         string
	ExternalCanonicalID string

	Type    string
	SubType string

	OccurredAt    string
	Amount        decimal.Decimal
	AmountSign    string
	AssetQuantity decimal.Decimal
	AssetSymbol   string

	AccountID         string
	OpposingAccountID string

	AFTOriginatorName      string
	AFTTransactionCategory string
	ETransferName          string
	SpendMerchant          string
}

// Key is the classification key: type and subtype joined with a slash.
// Subtype-less kinds end with a trailing slash, e.g. "MANAGED_BUY/".
func (a *Activity) Key() string {
	return a.Type + "/" + a.SubType
}
