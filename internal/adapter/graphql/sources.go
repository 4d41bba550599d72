package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglesemanation/wsexport/internal/domain"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

const (
	accountPageSize  = 25
	activityPageSize = 50
	activityOrder    = "OCCURRED_AT_DESC"
)

// Sources binds one bearer token to the GraphQL client and implements the
// account, activity, funds transfer and spend transaction sources.
type Sources struct {
	client *Client
	token  string
}

var (
	_ usecase.AccountSource          = (*Sources)(nil)
	_ usecase.ActivitySource         = (*Sources)(nil)
	_ usecase.FundsTransferSource    = (*Sources)(nil)
	_ usecase.SpendTransactionSource = (*Sources)(nil)
)

// NewSources creates token-bound sources for one session.
func NewSources(client *Client, token string) *Sources {
	return &Sources{client: client, token: token}
}

type accountNode struct {
	ID                 string `json:"id"`
	Nickname           string `json:"nickname"`
	UnifiedAccountType string `json:"unifiedAccountType"`
	CustodianAccounts  []struct {
		ID string `json:"id"`
	} `json:"custodianAccounts"`
}

type accountsData struct {
	Identity struct {
		ID       string                  `json:"id"`
		Accounts Connection[accountNode] `json:"accounts"`
	} `json:"identity"`
}

// All pages through the identity's accounts and returns every raw record.
func (s *Sources) All(ctx context.Context, identityID string) ([]domain.AccountRecord, error) {
	nodes, err := CollectPages(ctx, func(ctx context.Context, cursor *string) (Connection[accountNode], error) {
		var data accountsData
		err := s.client.Do(ctx, s.token, opFetchAllAccountFinancials, queryFetchAllAccountFinancials, map[string]any{
			"identityId": identityID,
			"pageSize":   accountPageSize,
			"cursor":     cursor,
		}, &data)
		if err == nil {
			s.client.countPage("accounts")
		}
		return data.Identity.Accounts, err
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.AccountRecord, 0, len(nodes))
	for _, node := range nodes {
		record := domain.AccountRecord{
			ID:                 node.ID,
			Nickname:           node.Nickname,
			UnifiedAccountType: node.UnifiedAccountType,
		}
		for _, custodian := range node.CustodianAccounts {
			record.CustodianAccountIDs = append(record.CustodianAccountIDs, custodian.ID)
		}
		records = append(records, record)
	}
	return records, nil
}

type activityNode struct {
	AccountID              string              `json:"accountId"`
	AFTOriginatorName      string              `json:"aftOriginatorName"`
	AFTTransactionCategory string              `json:"aftTransactionCategory"`
	Amount                 decimal.NullDecimal `json:"amount"`
	AmountSign             *string             `json:"amountSign"`
	AssetQuantity          decimal.NullDecimal `json:"assetQuantity"`
	AssetSymbol            string              `json:"assetSymbol"`
	CanonicalID            string              `json:"canonicalId"`
	ETransferName          string              `json:"eTransferName"`
	ExternalCanonicalID    string              `json:"externalCanonicalId"`
	OccurredAt             string              `json:"occurredAt"`
	OpposingAccountID      string              `json:"opposingAccountId"`
	SpendMerchant          string              `json:"spendMerchant"`
	SubType                string              `json:"subType"`
	Type                   string              `json:"type"`
}

func (n *activityNode) toDomain() domain.Activity {
	act := domain.Activity{
		CanonicalID:            n.CanonicalID,
		ExternalCanonicalID:    n.ExternalCanonicalID,
		Type:                   n.Type,
		SubType:                n.SubType,
		OccurredAt:             n.OccurredAt,
		AssetSymbol:            n.AssetSymbol,
		AccountID:              n.AccountID,
		OpposingAccountID:      n.OpposingAccountID,
		AFTOriginatorName:      n.AFTOriginatorName,
		AFTTransactionCategory: n.AFTTransactionCategory,
		ETransferName:          n.ETransferName,
		SpendMerchant:          n.SpendMerchant,
	}
	if n.Amount.Valid {
		act.Amount = n.Amount.Decimal
	}
	if n.AssetQuantity.Valid {
		act.AssetQuantity = n.AssetQuantity.Decimal
	}
	if n.AmountSign != nil {
		act.AmountSign = *n.AmountSign
	}
	return act
}

type activityCondition struct {
	AccountIDs []string `json:"accountIds"`
	StartDate  string   `json:"startDate"`
}

type activitiesData struct {
	ActivityFeedItems Connection[activityNode] `json:"activityFeedItems"`
}

// Pages drives sequential cursor pagination over the activity feed, newest
// first, invoking visit once per page.
func (s *Sources) Pages(ctx context.Context, filter usecase.ActivityFilter, visit func([]domain.Activity) error) error {
	condition := activityCondition{
		AccountIDs: filter.AccountIDs,
		StartDate:  filter.StartDate.UTC().Format(time.RFC3339),
	}
	fetch := func(ctx context.Context, cursor *string) (Connection[activityNode], error) {
		var data activitiesData
		err := s.client.Do(ctx, s.token, opFetchActivityFeedItems, queryFetchActivityFeedItems, map[string]any{
			"first":     activityPageSize,
			"cursor":    cursor,
			"condition": condition,
			"orderBy":   activityOrder,
		}, &data)
		if err == nil {
			s.client.countPage("activities")
		}
		return data.ActivityFeedItems, err
	}
	return ForEachPage(ctx, fetch, func(nodes []activityNode) error {
		activities := make([]domain.Activity, 0, len(nodes))
		for i := range nodes {
			activities = append(activities, nodes[i].toDomain())
		}
		return visit(activities)
	})
}

type bankAccountOwner struct {
	BankAccount struct {
		InstitutionName string `json:"institutionName"`
		Nickname        string `json:"nickname"`
	} `json:"bankAccount"`
}

type fundsTransferData struct {
	FundsTransfer *struct {
		ID          string           `json:"id"`
		Status      string           `json:"status"`
		Source      bankAccountOwner `json:"source"`
		Destination bankAccountOwner `json:"destination"`
	} `json:"fundsTransfer"`
}

// Get resolves one funds transfer by external canonical id.
func (s *Sources) Get(ctx context.Context, id string) (*domain.FundsTransfer, error) {
	var data fundsTransferData
	err := s.client.Do(ctx, s.token, opFetchFundsTransfer, queryFetchFundsTransfer, map[string]any{
		"id": id,
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.FundsTransfer == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFundsTransferNotResolved, id)
	}
	return &domain.FundsTransfer{
		ID:     data.FundsTransfer.ID,
		Status: data.FundsTransfer.Status,
		Source: domain.BankAccount{
			InstitutionName: data.FundsTransfer.Source.BankAccount.InstitutionName,
			Nickname:        data.FundsTransfer.Source.BankAccount.Nickname,
		},
		Destination: domain.BankAccount{
			InstitutionName: data.FundsTransfer.Destination.BankAccount.InstitutionName,
			Nickname:        data.FundsTransfer.Destination.BankAccount.Nickname,
		},
	}, nil
}

type spendNode struct {
	ID                             string `json:"id"`
	HasReward                      bool   `json:"hasReward"`
	RewardAmount                   int64  `json:"rewardAmount"`
	RewardPayoutCustodianAccountID string `json:"rewardPayoutCustodianAccountId"`
}

type spendData struct {
	SpendTransactions Connection[spendNode] `json:"spendTransactions"`
}

// ListByIDs pages through one account's spend transactions filtered to the
// given transaction ids and returns them keyed by id.
func (s *Sources) ListByIDs(ctx context.Context, accountID string, transactionIDs []string) (map[string]*domain.SpendTransaction, error) {
	nodes, err := CollectPages(ctx, func(ctx context.Context, cursor *string) (Connection[spendNode], error) {
		var data spendData
		err := s.client.Do(ctx, s.token, opFetchSpendTransactions, queryFetchSpendTransactions, map[string]any{
			"transactionIds": transactionIDs,
			"accountId":      accountID,
			"cursor":         cursor,
		}, &data)
		if err == nil {
			s.client.countPage("spend_transactions")
		}
		return data.SpendTransactions, err
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.SpendTransaction, len(nodes))
	for _, node := range nodes {
		byID[node.ID] = &domain.SpendTransaction{
			ID:                             node.ID,
			AccountID:                      accountID,
			HasReward:                      node.HasReward,
			RewardAmount:                   node.RewardAmount,
			RewardPayoutCustodianAccountID: node.RewardPayoutCustodianAccountID,
		}
	}
	return byID, nil
}
