package v1_test

import (
	"net/http"

	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestExpectedTransaction(body string) v1.ExpectedTransactionResponse {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expected-transactions", body)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ExpectedTransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	return response
}

func (suite *TestSuiteStandard) TestPayExpectedTransaction() {
	created := suite.createTestExpectedTransaction(`{"amount": "100", "description": "Rent", "category": "household", "dueDate": "2026-09-15T00:00:00Z", "type": "expense"}`)
	assert.False(suite.T(), created.Data.IsPaid)

	r := test.Request(suite.T(), suite.router, http.MethodPost, created.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var paid v1.ExpectedTransactionResponse
	test.DecodeResponse(suite.T(), &r, &paid)
	require.NotNil(suite.T(), paid.Data)
	assert.True(suite.T(), paid.Data.IsPaid)

	// Paying a second time changes nothing
	r = test.Request(suite.T(), suite.router, http.MethodPost, created.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, 1, "exactly one realized transaction for the payment")
}

func (suite *TestSuiteStandard) TestGetExpectedTransactionsFilter() {
	suite.createTestExpectedTransaction(`{"amount": "100", "description": "Rent", "category": "household", "dueDate": "2026-09-15T00:00:00Z", "type": "expense"}`)
	suite.createTestExpectedTransaction(`{"amount": "300", "description": "Bonus", "category": "other", "dueDate": "2026-09-20T00:00:00Z", "type": "income"}`)

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expected-transactions?type=income", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExpectedTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Bonus", response.Data[0].Description)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expected-transactions?isPaid=false", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestCreateCreditPurchase() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/credit-purchases",
		`{"amount": "1200", "description": "New couch", "category": "household", "type": "expense", "terms": {"totalAmount": "1200", "totalMonths": 12, "startDate": "2026-08-01T00:00:00Z"}}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.IsCreditPurchase)
	require.NotNil(suite.T(), response.Data.CreditDetails)
	assert.Equal(suite.T(), 12, response.Data.CreditDetails.TotalMonths)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expected-transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var installments v1.ExpectedTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &installments)
	assert.Len(suite.T(), installments.Data, 12)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/credit-purchases", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var purchases v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &purchases)
	assert.Len(suite.T(), purchases.Data, 1)
}

func (suite *TestSuiteStandard) TestRefreshCreditPurchases() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/credit-purchases/refresh", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}
