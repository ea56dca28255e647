package v1_test

import (
	"net/http"

	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/expected-transactions", response.Links.ExpectedTransactions)
	assert.Equal(suite.T(), "http://example.com/v1/profile", response.Links.Profile)
}

func (suite *TestSuiteStandard) TestV1ForwardedHost() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1", "", map[string]string{
		"x-forwarded-host":  "app.example.com",
		"x-forwarded-proto": "https",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "https://app.example.com/api/v1/transactions", response.Links.Transactions)
}

func (suite *TestSuiteStandard) TestCleanupWithoutConfirmation() {
	suite.createTestTransaction(`{"amount": "10", "category": "household", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	assert.Len(suite.T(), suite.store.Transactions(), 1, "data survives an unconfirmed cleanup")
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createTestTransaction(`{"amount": "10", "category": "household", "type": "expense"}`)

	r := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	assert.Empty(suite.T(), suite.store.Transactions())

	profile := suite.store.Profile()
	assert.True(suite.T(), profile.MonthlyBudget.IsZero())
	assert.Empty(suite.T(), profile.PaymentMethods)
}

func (suite *TestSuiteStandard) TestHealthz() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
}

func (suite *TestSuiteStandard) TestGetProfile() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "USD", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	r := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/profile", `{"firstName": "Kim", "currency": "EUR"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Kim", response.Data.FirstName)
	assert.Equal(suite.T(), "EUR", response.Data.Currency)
	assert.Equal(suite.T(), "US", response.Data.Country, "fields not in the patch are unchanged")
}

func (suite *TestSuiteStandard) TestUpdateProfileEmptyBody() {
	r := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
