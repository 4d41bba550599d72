package domain

import "fmt"

// Describe synthesizes the human-readable description for an activity. This
// is a closed table, kept separate from the emission decision so the two can
// change independently. A key with no case yields an empty description and no
// error; rows are still emitted with the field blank.
func Describe(act *Activity, dir *Directory, transfers map[string]*FundsTransfer) (string, error) {
	switch act.Key() {
	case "DEPOSIT/AFT":
		return "Direct deposit from " + act.AFTOriginatorName, nil
	case "DEPOSIT/EFT":
		transfer, ok := transfers[act.ExternalCanonicalID]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrFundsTransferNotResolved, act.ExternalCanonicalID)
		}
		return "Electronic funds transfer from " + transfer.Source.InstitutionName, nil
	case "DIVIDEND/":
		return "Dividend from " + act.AssetSymbol, nil
	case "FEE/MANAGEMENT_FEE":
		return "Management fee", nil
	case "INTEREST/":
		return "Interest", nil
	case "INTERNAL_TRANSFER/DESTINATION":
		opposing, err := dir.Lookup(act.OpposingAccountID)
		if err != nil {
			return "", err
		}
		return "Transfer from " + opposing.Nickname, nil
	case "INTERNAL_TRANSFER/SOURCE":
		opposing, err := dir.Lookup(act.OpposingAccountID)
		if err != nil {
			return "", err
		}
		return "Transfer to " + opposing.Nickname, nil
	case "LEGACY_TRANSFER/TRANSFER_IN":
		return "Institutional transfer", nil
	case "MANAGED_BUY/":
		return "Invested cash in " + act.AssetSymbol, nil
	case "MANAGED_SELL/":
		return "Sold asset of " + act.AssetSymbol, nil
	case "PROMOTION/INCENTIVE_BONUS":
		return "Promotional bonus", nil
	case "REFERRAL/":
		return "Referral bonus", nil
	case "REFUND/TRANSFER_FEE_REFUND":
		return "Transfer fee refund", nil
	case "REIMBURSEMENT/ACCOUNTING_REIMBURSEMENT":
		return "Accounting reimbursement", nil
	case "REIMBURSEMENT/ATM":
		return "ATM fee reimbursement", nil
	case "REIMBURSEMENT/ETF_REBATE":
		return "Exchange-traded funds rebate", nil
	case "SPEND/PREPAID":
		return act.SpendMerchant, nil
	case "STOCK_DIVIDEND/":
		return "Stock dividend", nil
	case "WITHDRAWAL/AFT":
		return "Pre-authorized debit to " + act.AFTOriginatorName, nil
	case "WITHDRAWAL/E_TRANSFER":
		return "INTERAC e-Transfer® to " + act.ETransferName, nil
	case "WRITE_OFF/":
		return "Write-off", nil
	}
	return "", nil
}
