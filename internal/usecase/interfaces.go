package usecase

import (
	"context"
	"time"

	"github.com/eaglesemanation/wsexport/internal/domain"
)

// ActivityFilter narrows the activity feed to a set of accounts and a start
// date. Pages arrive in OCCURRED_AT_DESC order.
type ActivityFilter struct {
	AccountIDs []string
	StartDate  time.Time
}

// AccountSource pages through the accounts endpoint and returns every raw
// account record for an identity.
type AccountSource interface {
	All(ctx context.Context, identityID string) ([]domain.AccountRecord, error)
}

// ActivitySource drives sequential cursor pagination over the activity feed,
// invoking visit once per page. A fetch or visit error aborts the traversal.
type ActivitySource interface {
	Pages(ctx context.Context, filter ActivityFilter, visit func(activities []domain.Activity) error) error
}

// FundsTransferSource resolves one funds transfer by external canonical id.
type FundsTransferSource interface {
	Get(ctx context.Context, id string) (*domain.FundsTransfer, error)
}

// SpendTransactionSource pages through the spend transactions of one account,
// filtered to the given transaction ids, and returns them keyed by id.
type SpendTransactionSource interface {
	ListByIDs(ctx context.Context, accountID string, transactionIDs []string) (map[string]*domain.SpendTransaction, error)
}

// IDGenerator generates run identifiers.
type IDGenerator interface {
	Generate() string
}

// RunRecorder persists the audit record of a finished run.
type RunRecorder interface {
	Record(ctx context.Context, run *domain.ExportRun) error
}

// RunLister reads back recent run records.
type RunLister interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRun, error)
}

// DocumentCache caches rendered export documents in server mode.
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, document []byte, ttl time.Duration) error
}
