package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Emission decides which rows a classification key produces. The zero value
// is the default for keys absent from the table: a cash-amount row only.
type Emission int

const (
	// EmitCash produces a single cash-amount row.
	EmitCash Emission = iota
	// EmitSkip produces no rows; the activity carries neither a usable asset
	// quantity nor a settled cash amount.
	EmitSkip
	// EmitAssetOnly produces an asset-quantity row and ends processing.
	EmitAssetOnly
	// EmitAssetAndCash produces an asset-quantity row followed by a cash row.
	EmitAssetAndCash
)

// emissionByKey is a closed table. Adding a new upstream activity kind
// requires an explicit entry; unknown keys fall through to EmitCash.
var emissionByKey = map[string]Emission{
	"INSTITUTIONAL_TRANSFER_INTENT/TRANSFER_IN": EmitSkip,
	"LEGACY_TRANSFER/TRANSFER_IN":               EmitAssetOnly,
	"STOCK_DIVIDEND/":                           EmitAssetOnly,
	"MANAGED_BUY/":                              EmitAssetAndCash,
	"MANAGED_SELL/":                             EmitAssetAndCash,
}

// EmissionFor returns the emission decision for a classification key.
func EmissionFor(key string) Emission {
	return emissionByKey[key]
}

// JoinData holds the per-page enrichment results consulted during
// classification. Rebuilt for every activity page.
type JoinData struct {
	// FundsTransfers is keyed by external canonical id.
	FundsTransfers map[string]*FundsTransfer
	// SpendTransactions is keyed by account id, then external canonical id.
	SpendTransactions map[string]map[string]*SpendTransaction
}

// Classify maps one activity to its ledger rows: zero for skipped kinds, an
// asset-quantity row and/or a cash-amount row per the dispatch table, plus an
// optional reward row when the joined spend transaction reports one. Lookup
// misses against the directory or the join data are data-integrity faults.
func Classify(act *Activity, dir *Directory, joins JoinData) ([]Row, error) {
	emission := EmissionFor(act.Key())
	if emission == EmitSkip {
		return nil, nil
	}

	account, err := dir.Lookup(act.AccountID)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", act.CanonicalID, err)
	}

	description, err := Describe(act, dir, joins.FundsTransfers)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", act.CanonicalID, err)
	}

	rows := make([]Row, 0, 2)
	if emission == EmitAssetOnly || emission == EmitAssetAndCash {
		rows = append(rows, Row{
			Date:          act.OccurredAt,
			Description:   description,
			MerchantName:  act.SpendMerchant,
			CategoryHint:  act.AFTTransactionCategory,
			Amount:        assetQuantity(act),
			Symbol:        act.AssetSymbol,
			Account:       account.Nickname,
			AccountNumber: account.PrimaryCustodianID(),
			Institution:   InstitutionLabel,
			TransactionID: act.CanonicalID,
		})
	}
	if emission == EmitAssetOnly {
		return rows, nil
	}

	rows = append(rows, Row{
		Date:          act.OccurredAt,
		Description:   description,
		MerchantName:  act.SpendMerchant,
		CategoryHint:  act.AFTTransactionCategory,
		Amount:        cashAmount(act),
		Symbol:        "",
		Account:       account.Nickname,
		AccountNumber: account.PrimaryCustodianID(),
		Institution:   InstitutionLabel,
		TransactionID: act.CanonicalID,
	})

	spend := joins.SpendTransactions[act.AccountID][act.ExternalCanonicalID]
	if spend == nil || !spend.HasReward {
		return rows, nil
	}
	payout, err := dir.FindByCustodianID(spend.RewardPayoutCustodianAccountID)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", act.CanonicalID, err)
	}
	rows = append(rows, Row{
		Date:          act.OccurredAt,
		Description:   "Spend rewards",
		Amount:        spend.RewardValue(),
		Account:       payout.Nickname,
		AccountNumber: payout.PrimaryCustodianID(),
		Institution:   InstitutionLabel,
		// The parent activity's id, on purpose: the reward settles against
		// the same transaction.
		TransactionID: act.CanonicalID,
	})
	return rows, nil
}

// assetQuantity returns the signed asset quantity: negated for a managed
// sell, as-is otherwise.
func assetQuantity(act *Activity) decimal.Decimal {
	if act.Key() == "MANAGED_SELL/" {
		return act.AssetQuantity.Neg()
	}
	return act.AssetQuantity
}

// cashAmount returns the signed cash amount. A managed buy is always an
// outflow; every other kind follows the explicit sign flag, with an absent
// flag meaning positive.
func cashAmount(act *Activity) decimal.Decimal {
	if act.Key() == "MANAGED_BUY/" {
		return act.Amount.Neg()
	}
	if act.AmountSign == AmountSignNegative {
		return act.Amount.Neg()
	}
	return act.Amount
}
