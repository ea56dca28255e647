package v1_test

import (
	"net/http"

	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetCategories() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 9, "default categories are seeded")
}

func (suite *TestSuiteStandard) TestCategoryCRUD() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/categories", `{"name": "Pets", "color": "#AABBCC"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var created v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &created)
	require.NotNil(suite.T(), created.Data)
	assert.NotEmpty(suite.T(), created.Data.ID)

	r = test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/categories/"+created.Data.ID, `{"name": "Pets & plants"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/categories/"+created.Data.ID, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var got v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &got)
	require.NotNil(suite.T(), got.Data)
	assert.Equal(suite.T(), "Pets & plants", got.Data.Name)
	assert.Equal(suite.T(), "#AABBCC", got.Data.Color, "fields not in the patch are unchanged")

	r = test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/categories/"+created.Data.ID, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/categories/"+created.Data.ID, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithoutName() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/categories", `{"color": "#AABBCC"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
