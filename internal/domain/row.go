package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InstitutionLabel is the constant issuer label in every row.
const InstitutionLabel = "Wealthsimple"

// Header is the fixed column order of the export document.
var Header = []string{
	"Date",
	"Description",
	"Merchant Name",
	"Category Hint",
	"Amount",
	"Symbol",
	"Account",
	"Account #",
	"Institution",
	"Transaction ID",
}

// Row is one fully normalized output line. The Amount column carries either a
// cash amount or a signed asset quantity depending on the emitting phase.
type Row struct {
	Date          string
	Description   string
	MerchantName  string
	CategoryHint  string
	Amount        decimal.Decimal
	Symbol        string
	Account       string
	AccountNumber string
	Institution   string
	TransactionID string
}

// Fields returns the row's columns in header order.
func (r *Row) Fields() []string {
	return []string{
		r.Date,
		r.Description,
		r.MerchantName,
		r.CategoryHint,
		r.Amount.String(),
		r.Symbol,
		r.Account,
		r.AccountNumber,
		r.Institution,
		r.TransactionID,
	}
}

// RenderCSV serializes the header and rows to the delimited output document.
// Fields are joined with commas verbatim and every row ends with a newline.
// Quoting would change the bytes importers already accept, so none is applied.
func RenderCSV(rows []Row) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	b.WriteByte('\n')
	for i := range rows {
		b.WriteString(strings.Join(rows[i].Fields(), ","))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
