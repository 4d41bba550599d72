package domain

import "fmt"

// nicknameByType maps a unified account type to its display label. Used only
// when the upstream account carries no explicit nickname. The table is closed:
// an unknown type without a nickname is upstream data we do not understand,
// not a case to default.
var nicknameByType = map[string]string{
	"CASH":                         "Cash",
	"MANAGED_JOINT":                "Joint",
	"MANAGED_NON_REGISTERED":       "Non-registered",
	"MANAGED_RRSP":                 "RRSP",
	"MANAGED_TFSA":                 "TFSA",
	"SELF_DIRECTED_CRYPTO":         "Crypto",
	"SELF_DIRECTED_NON_REGISTERED": "Non-registered",
}

// AccountRecord is one raw account node as paged from the accounts source.
type AccountRecord struct {
	ID                  string
	Nickname            string
	UnifiedAccountType  string
	CustodianAccountIDs []string
}

// Account is a resolved display record. Owned by the Directory; consumers
// look it up by id and never mutate it.
type Account struct {
	ID                  string
	Nickname            string
	CustodianAccountIDs []string
}

// PrimaryCustodianID returns the first custodian account number, used in
// filenames and the Account # column.
func (a *Account) PrimaryCustodianID() string {
	return a.CustodianAccountIDs[0]
}

// Directory maps account ids to resolved accounts for one run. Built once,
// read-only afterward.
type Directory struct {
	byID  map[string]*Account
	order []string
}

// BuildDirectory resolves raw account records into a Directory. Nickname
// resolution order: explicit nickname, else the type label table. Custodian
// account numbers keep source order and must be non-empty.
func BuildDirectory(records []AccountRecord) (*Directory, error) {
	dir := &Directory{
		byID:  make(map[string]*Account, len(records)),
		order: make([]string, 0, len(records)),
	}
	for _, rec := range records {
		nickname := rec.Nickname
		if nickname == "" {
			label, ok := nicknameByType[rec.UnifiedAccountType]
			if !ok {
				return nil, fmt.Errorf("%w: %q (account %s)", ErrNoAccountTypeLabel, rec.UnifiedAccountType, rec.ID)
			}
			nickname = label
		}
		if len(rec.CustodianAccountIDs) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoCustodianAccounts, rec.ID)
		}
		dir.byID[rec.ID] = &Account{
			ID:                  rec.ID,
			Nickname:            nickname,
			CustodianAccountIDs: rec.CustodianAccountIDs,
		}
		dir.order = append(dir.order, rec.ID)
	}
	return dir, nil
}

// Lookup returns the account for id. A miss is a data-integrity fault: the
// upstream contract guarantees every referenced account id is known.
func (d *Directory) Lookup(id string) (*Account, error) {
	account, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return account, nil
}

// IDs returns all account ids in source order.
func (d *Directory) IDs() []string {
	ids := make([]string, len(d.order))
	copy(ids, d.order)
	return ids
}

// Len returns the number of accounts in the directory.
func (d *Directory) Len() int {
	return len(d.order)
}

// FindByCustodianID returns the account holding the given custodian account
// number. Linear scan; the account count per identity is small.
func (d *Directory) FindByCustodianID(custodianID string) (*Account, error) {
	for _, id := range d.order {
		account := d.byID[id]
		for _, cid := range account.CustodianAccountIDs {
			if cid == custodianID {
				return account, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPayoutAccountNotFound, custodianID)
}
