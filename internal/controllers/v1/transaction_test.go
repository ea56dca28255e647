package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	response := suite.createTestTransaction(`{"amount": "14.03", "description": "Lunch", "category": "household", "type": "expense"}`)

	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
	assert.Equal(suite.T(), "Lunch", response.Data.Description)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
	assert.Contains(suite.T(), response.Data.Links.Self, "/v1/transactions/")
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "amount": `},
		{"Negative amount", `{"amount": "-10", "category": "household", "type": "expense"}`},
		{"Unknown type", `{"amount": "10", "category": "household", "type": "transfer"}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	suite.createTestTransaction(`{"amount": "10", "description": "Groceries for the week", "category": "household", "type": "expense"}`)
	suite.createTestTransaction(`{"amount": "20", "description": "Fuel", "category": "car", "type": "expense"}`)
	suite.createTestTransaction(`{"amount": "3000", "description": "Salary", "category": "other", "type": "income"}`)

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"type=expense", 2},
		{"type=income", 1},
		{"category=car", 1},
		{"description=*groceries*", 1},
		{"description=nothing-matches", 0},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Len(suite.T(), response.Data, tt.count, "wrong result count for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestGetTransactionInvalidUUID() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	created := suite.createTestTransaction(`{"amount": "10", "description": "Lunch", "category": "household", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodPatch, created.Data.Links.Self, `{"description": "Dinner"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Dinner", response.Data.Description)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(10)), "fields not in the patch are unchanged")
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	created := suite.createTestTransaction(`{"amount": "10", "category": "household", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
