package v1_test

import (
	"net/http"

	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetBalance() {
	suite.createTestTransaction(`{"amount": "1000", "description": "Salary", "category": "other", "type": "income"}`)
	suite.createTestTransaction(`{"amount": "200", "description": "Groceries", "category": "household", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/balance", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.AvailableBalance.Equal(decimal.NewFromInt(800)), "balance is %s", response.Data.AvailableBalance)
	assert.Equal(suite.T(), "$800.00", response.Data.AvailableBalanceDisplay)
	assert.True(suite.T(), response.Data.BudgetRemaining.Equal(decimal.NewFromInt(1800)))
	assert.True(suite.T(), response.Data.BudgetUsedPercentage.Equal(decimal.NewFromInt(10)), "budget used is %s", response.Data.BudgetUsedPercentage)
}

func (suite *TestSuiteStandard) TestGetMonthlyTotals() {
	suite.createTestTransaction(`{"amount": "100", "category": "household", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/monthly-totals", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.MonthlyTotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 6)

	// Oldest first, so the current month is the last entry
	last := response.Data[len(response.Data)-1]
	assert.True(suite.T(), last.Expenses.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), response.Data[0].Month.Before(last.Month))

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/monthly-totals?months=3", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 3)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/monthly-totals?months=zero", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/monthly-totals?months=1000000000", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestGetCategoryTotals() {
	suite.createTestTransaction(`{"amount": "200", "category": "household", "type": "expense"}`)
	suite.createTestTransaction(`{"amount": "400", "category": "car", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/category-totals", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategoryTotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "car", response.Data[0].CategoryID)
	assert.Equal(suite.T(), "Car", response.Data[0].CategoryName)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/insights/category-totals?fromDate=2099-01-01", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}
