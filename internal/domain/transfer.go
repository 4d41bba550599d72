package domain

// BankAccount describes one side of a funds transfer.
type BankAccount struct {
	InstitutionName string
	Nickname        string
}

// FundsTransfer is a bank-to-platform or platform-to-bank transfer record,
// resolved separately from the activity feed by external canonical id.
type FundsTransfer struct {
	ID          string
	Status      string
	Source      BankAccount
	Destination BankAccount
}
