package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestPaymentMethod(body string) v1.PaymentMethodResponse {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/payment-methods", body)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.PaymentMethodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	return response
}

func (suite *TestSuiteStandard) TestRemainingLimit() {
	card := suite.createTestPaymentMethod(`{"type": "creditCard", "name": "Gold card", "cardType": "visa", "limit": "500"}`)

	body := fmt.Sprintf(`{"amount": "80", "category": "shopping", "type": "expense", "paymentMethod": {"id": "%s", "type": "creditCard", "name": "Gold card"}}`, card.Data.ID)
	suite.createTestTransaction(body)

	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/payment-methods/%s/remaining-limit", card.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.RemainingLimitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.CurrentUsage.Equal(decimal.NewFromInt(80)))
	assert.True(suite.T(), response.Data.RemainingLimit.Equal(decimal.NewFromInt(420)))
}

func (suite *TestSuiteStandard) TestRemainingLimitNotFound() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/payment-methods/%s/remaining-limit", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestCreatePaymentMethodInvalidType() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/payment-methods", `{"type": "check", "name": "Checkbook"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestHouseholdMembers() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/household-members", `{"name": "Alex", "type": "adult", "salary": "3000"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var created v1.HouseholdMemberResponse
	test.DecodeResponse(suite.T(), &r, &created)
	require.NotNil(suite.T(), created.Data)

	r = test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/household-members/%s", created.Data.ID), `{"salary": "3500"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.HouseholdMemberResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	require.NotNil(suite.T(), updated.Data)
	require.NotNil(suite.T(), updated.Data.Salary)
	assert.True(suite.T(), updated.Data.Salary.Equal(decimal.NewFromInt(3500)))
	assert.Equal(suite.T(), "Alex", updated.Data.Name, "fields not in the patch are unchanged")

	r = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/household-members/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	assert.Empty(suite.T(), suite.store.Profile().HouseholdMembers)
}

func (suite *TestSuiteStandard) TestBankAccounts() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/bank-accounts", `{"name": "Checking", "balance": "1500"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var created v1.BankAccountResponse
	test.DecodeResponse(suite.T(), &r, &created)
	require.NotNil(suite.T(), created.Data)
	assert.True(suite.T(), created.Data.Balance.Equal(decimal.NewFromInt(1500)))

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/bank-accounts", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var list v1.BankAccountListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
}
