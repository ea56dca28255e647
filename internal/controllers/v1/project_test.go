package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/models"
	"github.com/hearthledger/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) addAdult(salary int64) {
	s := decimal.NewFromInt(salary)
	_, err := suite.store.AddHouseholdMember(models.HouseholdMember{
		Name:   "Alex",
		Type:   models.Adult,
		Salary: &s,
	})
	require.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCreateProjectInfeasible() {
	suite.addAdult(3000)

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/projects",
		`{"name": "World trip", "targetAmount": "12000", "monthlyInvestment": "1000", "numberOfMonths": 12}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "household income")
}

func (suite *TestSuiteStandard) TestCreateProject() {
	suite.addAdult(3000)

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/projects",
		`{"name": "World trip", "targetAmount": "10800", "monthlyInvestment": "900", "numberOfMonths": 12}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.CurrentAmount.IsZero())
	assert.Contains(suite.T(), response.Data.Links.Contributions, "/contributions")
}

func (suite *TestSuiteStandard) TestContributeToProject() {
	suite.addAdult(3000)

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/projects",
		`{"name": "Renovation", "targetAmount": "500", "monthlyInvestment": "100", "numberOfMonths": 5}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var created v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &created)
	require.NotNil(suite.T(), created.Data)

	r = test.Request(suite.T(), suite.router, http.MethodPost, created.Data.Links.Contributions, `{"amount": "150"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromInt(150)))

	// The contribution shows up as a linked expense
	r = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?project=%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	require.Len(suite.T(), transactions.Data, 1)
	assert.Equal(suite.T(), "Contribution to Renovation", transactions.Data[0].Description)
}

func (suite *TestSuiteStandard) TestProjectFeasibilityEndpoint() {
	suite.addAdult(3000)

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects/feasibility?monthlyInvestment=500", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.FeasibilityResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Feasible)
	assert.True(suite.T(), response.Data.MaximumMonthlyInvestment.Equal(decimal.NewFromInt(900)))

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects/feasibility?monthlyInvestment=901", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.Feasible)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects/feasibility", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
