package graphql

// Operation documents, trimmed to the fields the exporter reads. Operation
// names and roots match the upstream schema.

const opFetchAllAccountFinancials = "FetchAllAccountFinancials"

const queryFetchAllAccountFinancials = `
query FetchAllAccountFinancials($identityId: ID!, $pageSize: Int = 25, $cursor: String) {
  identity(id: $identityId) {
    id
    accounts(filter: {}, first: $pageSize, after: $cursor) {
      pageInfo {
        hasNextPage
        endCursor
      }
      edges {
        node {
          id
          nickname
          unifiedAccountType
          custodianAccounts {
            id
          }
        }
      }
    }
  }
}`

const opFetchActivityFeedItems = "FetchActivityFeedItems"

const queryFetchActivityFeedItems = `
query FetchActivityFeedItems($first: Int, $cursor: Cursor, $condition: ActivityCondition, $orderBy: [ActivitiesOrderBy!] = OCCURRED_AT_DESC) {
  activityFeedItems(first: $first, after: $cursor, condition: $condition, orderBy: $orderBy) {
    edges {
      node {
        accountId
        aftOriginatorName
        aftTransactionCategory
        amount
        amountSign
        assetQuantity
        assetSymbol
        canonicalId
        eTransferName
        externalCanonicalId
        occurredAt
        opposingAccountId
        spendMerchant
        subType
        type
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

const opFetchFundsTransfer = "FetchFundsTransfer"

const queryFetchFundsTransfer = `
query FetchFundsTransfer($id: ID!) {
  fundsTransfer: funds_transfer(id: $id, include_cancelled: true) {
    id
    status
    source {
      bankAccount: bank_account {
        institutionName: institution_name
        nickname
      }
    }
    destination {
      bankAccount: bank_account {
        institutionName: institution_name
        nickname
      }
    }
  }
}`

const opFetchSpendTransactions = "FetchSpendTransactions"

const queryFetchSpendTransactions = `
query FetchSpendTransactions($transactionIds: [String!], $accountId: String!, $cursor: String) {
  spendTransactions(transactionIds: $transactionIds, accountId: $accountId, after: $cursor) {
    edges {
      node {
        id
        hasReward
        rewardAmount
        rewardPayoutCustodianAccountId
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`
