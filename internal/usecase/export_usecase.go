package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eaglesemanation/wsexport/internal/domain"
)

// ExportInput are the run parameters supplied by the trigger boundary.
// An empty AccountIDs means every account in the directory.
type ExportInput struct {
	IdentityID string
	AccountIDs []string
	Timeframe  domain.Timeframe
}

// ExportResult is one complete, internally consistent export document.
type ExportResult struct {
	RunID    string
	Filename string
	Document []byte
	RowCount int
}

// ExportUseCase reconciles the activity feed, funds transfers and spend
// transactions into a single deduplicated, deterministically ordered export
// document. It holds no state across runs.
type ExportUseCase struct {
	accounts   AccountSource
	activities ActivitySource
	transfers  FundsTransferSource
	spends     SpendTransactionSource
	idGen      IDGenerator
	recorder   RunRecorder // optional
	logger     zerolog.Logger
	now        func() time.Time
}

// NewExportUseCase creates a new export use case. recorder may be nil when
// run history is disabled.
func NewExportUseCase(
	accounts AccountSource,
	activities ActivitySource,
	transfers FundsTransferSource,
	spends SpendTransactionSource,
	idGen IDGenerator,
	recorder RunRecorder,
	logger zerolog.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		accounts:   accounts,
		activities: activities,
		transfers:  transfers,
		spends:     spends,
		idGen:      idGen,
		recorder:   recorder,
		logger:     logger,
		now:        time.Now,
	}
}

// Export runs the full pipeline. Any transport failure or lookup fault aborts
// the run; either a complete document is returned or nothing is.
func (uc *ExportUseCase) Export(ctx context.Context, input ExportInput) (*ExportResult, error) {
	started := uc.now().UTC()
	runID := uc.idGen.Generate()
	log := uc.logger.With().Str("run_id", runID).Str("identity_id", input.IdentityID).Logger()

	result, err := uc.run(ctx, log, started, input)
	uc.record(ctx, log, runID, started, input, result, err)
	if err != nil {
		log.Error().Err(err).Msg("export run failed")
		return nil, err
	}
	result.RunID = runID
	log.Info().
		Int("rows", result.RowCount).
		Str("filename", result.Filename).
		Dur("elapsed", uc.now().UTC().Sub(started)).
		Msg("export run completed")
	return result, nil
}

func (uc *ExportUseCase) run(ctx context.Context, log zerolog.Logger, started time.Time, input ExportInput) (*ExportResult, error) {
	records, err := uc.accounts.All(ctx, input.IdentityID)
	if err != nil {
		return nil, fmt.Errorf("resolve accounts: %w", err)
	}
	dir, err := domain.BuildDirectory(records)
	if err != nil {
		return nil, fmt.Errorf("resolve accounts: %w", err)
	}
	log.Debug().Int("accounts", dir.Len()).Msg("account directory built")

	accountIDs := input.AccountIDs
	if len(accountIDs) == 0 {
		accountIDs = dir.IDs()
	} else {
		for _, id := range accountIDs {
			if _, err := dir.Lookup(id); err != nil {
				return nil, fmt.Errorf("account filter: %w", err)
			}
		}
	}

	filter := ActivityFilter{
		AccountIDs: accountIDs,
		StartDate:  input.Timeframe.StartDate(started),
	}

	var rows []domain.Row
	err = uc.activities.Pages(ctx, filter, func(page []domain.Activity) error {
		transfers, err := uc.resolveFundsTransfers(ctx, page)
		if err != nil {
			return err
		}
		spends, err := uc.resolveSpendTransactions(ctx, page)
		if err != nil {
			return err
		}
		joins := domain.JoinData{FundsTransfers: transfers, SpendTransactions: spends}
		for i := range page {
			emitted, err := domain.Classify(&page[i], dir, joins)
			if err != nil {
				return err
			}
			rows = append(rows, emitted...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("activity feed: %w", err)
	}

	domain.SortRows(rows)

	filename := input.IdentityID
	if len(accountIDs) == 1 {
		account, err := dir.Lookup(accountIDs[0])
		if err != nil {
			return nil, err
		}
		filename = account.PrimaryCustodianID()
	}

	return &ExportResult{
		Filename: filename,
		Document: domain.RenderCSV(rows),
		RowCount: len(rows),
	}, nil
}

// resolveFundsTransfers fetches the transfer details for every EFT deposit in
// the page, one concurrent fetch per id. Scoped to the page; no cross-page
// cache.
func (uc *ExportUseCase) resolveFundsTransfers(ctx context.Context, page []domain.Activity) (map[string]*domain.FundsTransfer, error) {
	var ids []string
	for i := range page {
		if page[i].Key() == domain.KeyDepositEFT {
			ids = append(ids, page[i].ExternalCanonicalID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	out := make(map[string]*domain.FundsTransfer, len(ids))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			transfer, err := uc.transfers.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("funds transfer %s: %w", id, err)
			}
			mu.Lock()
			out[id] = transfer
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveSpendTransactions groups the page's card-spend transaction ids by
// account and resolves each account's batch concurrently.
func (uc *ExportUseCase) resolveSpendTransactions(ctx context.Context, page []domain.Activity) (map[string]map[string]*domain.SpendTransaction, error) {
	idsByAccount := make(map[string][]string)
	for i := range page {
		if page[i].Key() == domain.KeySpendPrepaid {
			idsByAccount[page[i].AccountID] = append(idsByAccount[page[i].AccountID], page[i].ExternalCanonicalID)
		}
	}
	if len(idsByAccount) == 0 {
		return nil, nil
	}

	out := make(map[string]map[string]*domain.SpendTransaction, len(idsByAccount))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for accountID, ids := range idsByAccount {
		accountID, ids := accountID, ids
		g.Go(func() error {
			byID, err := uc.spends.ListByIDs(ctx, accountID, ids)
			if err != nil {
				return fmt.Errorf("spend transactions for account %s: %w", accountID, err)
			}
			mu.Lock()
			out[accountID] = byID
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ExportUseCase) record(ctx context.Context, log zerolog.Logger, runID string, started time.Time, input ExportInput, result *ExportResult, runErr error) {
	if uc.recorder == nil {
		return
	}
	run := &domain.ExportRun{
		ID:            runID,
		IdentityID:    input.IdentityID,
		AccountIDs:    input.AccountIDs,
		TimeframeDays: input.Timeframe.Days(),
		StartedAt:     started,
		Duration:      uc.now().UTC().Sub(started),
	}
	if runErr != nil {
		run.Status = domain.RunStatusFailed
		run.Error = runErr.Error()
	} else {
		run.Status = domain.RunStatusCompleted
		run.Filename = result.Filename
		run.RowCount = result.RowCount
	}
	if err := uc.recorder.Record(ctx, run); err != nil {
		// Run history is an audit trail, not part of the export contract.
		log.Warn().Err(err).Msg("failed to record export run")
	}
}
