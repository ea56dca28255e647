package v1_test

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/router"
	"github.com/hearthledger/backend/internal/storage"
	"github.com/hearthledger/backend/internal/store"
	"github.com/hearthledger/backend/internal/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
	storage *storage.SQLite
	store   *store.Store
	router  *gin.Engine
}

func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *TestSuiteStandard) SetupTest() {
	sqlite, err := storage.Connect(filepath.Join(suite.T().TempDir(), "api.db"))
	require.Nil(suite.T(), err)

	suite.storage = sqlite
	suite.store = store.New(sqlite)

	suite.router = gin.New()
	router.AttachRoutes(v1.Controller{Store: suite.store, Snapshots: sqlite}, suite.router.Group(""))
}

func (suite *TestSuiteStandard) TearDownTest() {
	suite.store.Flush()
	_ = suite.storage.Close()
}

func (suite *TestSuiteStandard) createTestTransaction(body string) v1.TransactionResponse {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	return response
}
