package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglesemanation/wsexport/internal/domain"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

// graphqlStub routes requests by operation name to canned response bodies.
// Bodies are consumed in order when an operation has several.
type graphqlStub struct {
	t         *testing.T
	responses map[string][]string
	requests  []request
}

func (g *graphqlStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(g.t, json.NewDecoder(r.Body).Decode(&req))
		g.requests = append(g.requests, req)
		bodies := g.responses[req.OperationName]
		require.NotEmpty(g.t, bodies, "no stubbed response for %s", req.OperationName)
		g.responses[req.OperationName] = bodies[1:]
		w.Write([]byte(bodies[0]))
	}
}

func newTestSources(t *testing.T, stub *graphqlStub) *Sources {
	t.Helper()
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "invest", 5*time.Second, nil, zerolog.Nop())
	return NewSources(client, "token-1")
}

func (g *graphqlStub) variables(t *testing.T, i int) map[string]any {
	t.Helper()
	raw, err := json.Marshal(g.requests[i].Variables)
	require.NoError(t, err)
	var vars map[string]any
	require.NoError(t, json.Unmarshal(raw, &vars))
	return vars
}

func TestSourcesAll_PagesAndMapsAccounts(t *testing.T) {
	stub := &graphqlStub{t: t, responses: map[string][]string{
		"FetchAllAccountFinancials": {
			`{"data":{"identity":{"id":"identity-1","accounts":{
				"edges":[{"node":{"id":"acct-1","nickname":"","unifiedAccountType":"CASH","custodianAccounts":[{"id":"WS100"},{"id":"WS101"}]}}],
				"pageInfo":{"hasNextPage":true,"endCursor":"c1"}}}}}`,
			`{"data":{"identity":{"id":"identity-1","accounts":{
				"edges":[{"node":{"id":"acct-2","nickname":"My TFSA","unifiedAccountType":"MANAGED_TFSA","custodianAccounts":[{"id":"WS200"}]}}],
				"pageInfo":{"hasNextPage":false,"endCursor":null}}}}}`,
		},
	}}
	sources := newTestSources(t, stub)

	records, err := sources.All(context.Background(), "identity-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.AccountRecord{
		ID: "acct-1", UnifiedAccountType: "CASH", CustodianAccountIDs: []string{"WS100", "WS101"},
	}, records[0])
	assert.Equal(t, "My TFSA", records[1].Nickname)

	require.Len(t, stub.requests, 2)
	first := stub.variables(t, 0)
	assert.Equal(t, "identity-1", first["identityId"])
	assert.Equal(t, float64(25), first["pageSize"])
	assert.Nil(t, first["cursor"])
	assert.Equal(t, "c1", stub.variables(t, 1)["cursor"])
}

func TestSourcesPages_ConditionAndDecoding(t *testing.T) {
	stub := &graphqlStub{t: t, responses: map[string][]string{
		"FetchActivityFeedItems": {
			`{"data":{"activityFeedItems":{
				"edges":[{"node":{
					"accountId":"acct-1","canonicalId":"a1","externalCanonicalId":"t1",
					"type":"SPEND","subType":"PREPAID","occurredAt":"2025-03-01T09:00:00Z",
					"amount":"12.75","amountSign":"negative","assetQuantity":null,"assetSymbol":null,
					"spendMerchant":"Groceteria"}}],
				"pageInfo":{"hasNextPage":false,"endCursor":null}}}}`,
		},
	}}
	sources := newTestSources(t, stub)

	start := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	var pages [][]domain.Activity
	err := sources.Pages(context.Background(), usecase.ActivityFilter{
		AccountIDs: []string{"acct-1", "acct-2"},
		StartDate:  start,
	}, func(activities []domain.Activity) error {
		pages = append(pages, activities)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, pages, 1)
	require.Len(t, pages[0], 1)
	act := pages[0][0]
	assert.Equal(t, "SPEND/PREPAID", act.Key())
	assert.Equal(t, "12.75", act.Amount.String())
	assert.Equal(t, domain.AmountSignNegative, act.AmountSign)
	assert.True(t, act.AssetQuantity.IsZero())
	assert.Equal(t, "Groceteria", act.SpendMerchant)

	vars := stub.variables(t, 0)
	assert.Equal(t, float64(50), vars["first"])
	assert.Equal(t, "OCCURRED_AT_DESC", vars["orderBy"])
	condition, ok := vars["condition"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"acct-1", "acct-2"}, condition["accountIds"])
	assert.Equal(t, "2025-02-01T12:00:00Z", condition["startDate"])
}

func TestSourcesGet_FundsTransfer(t *testing.T) {
	stub := &graphqlStub{t: t, responses: map[string][]string{
		"FetchFundsTransfer": {
			`{"data":{"fundsTransfer":{"id":"t1","status":"accepted",
				"source":{"bankAccount":{"institutionName":"Tangerine","nickname":"Chequing"}},
				"destination":{"bankAccount":{"institutionName":null,"nickname":null}}}}}`,
		},
	}}
	sources := newTestSources(t, stub)

	transfer, err := sources.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", transfer.ID)
	assert.Equal(t, "Tangerine", transfer.Source.InstitutionName)
	assert.Equal(t, "Chequing", transfer.Source.Nickname)
	assert.Empty(t, transfer.Destination.InstitutionName)
}

func TestSourcesGet_NullTransfer(t *testing.T) {
	stub := &graphqlStub{t: t, responses: map[string][]string{
		"FetchFundsTransfer": {`{"data":{"fundsTransfer":null}}`},
	}}
	sources := newTestSources(t, stub)

	_, err := sources.Get(context.Background(), "t-missing")
	assert.ErrorIs(t, err, domain.ErrFundsTransferNotResolved)
}

func TestSourcesListByIDs_PagesAndKeysByID(t *testing.T) {
	stub := &graphqlStub{t: t, responses: map[string][]string{
		"FetchSpendTransactions": {
			`{"data":{"spendTransactions":{
				"edges":[{"node":{"id":"t1","hasReward":true,"rewardAmount":250,"rewardPayoutCustodianAccountId":"WS100"}}],
				"pageInfo":{"hasNextPage":true,"endCursor":"c1"}}}}`,
			`{"data":{"spendTransactions":{
				"edges":[{"node":{"id":"t2","hasReward":false,"rewardAmount":0,"rewardPayoutCustodianAccountId":null}}],
				"pageInfo":{"hasNextPage":false,"endCursor":null}}}}`,
		},
	}}
	sources := newTestSources(t, stub)

	byID, err := sources.ListByIDs(context.Background(), "acct-1", []string{"t1", "t2"})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	assert.Equal(t, "acct-1", byID["t1"].AccountID)
	assert.True(t, byID["t1"].HasReward)
	assert.Equal(t, "2.5", byID["t1"].RewardValue().String())
	assert.False(t, byID["t2"].HasReward)

	vars := stub.variables(t, 0)
	assert.Equal(t, "acct-1", vars["accountId"])
	assert.Equal(t, []any{"t1", "t2"}, vars["transactionIds"])
}
