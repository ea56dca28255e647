package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
)

// RegisterRootRoutes registers the v1 root routes with the RouterGroup
// that is passed.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Transactions         string `json:"transactions" example:"https://example.com/api/v1/transactions"`                  // URL of the transaction collection endpoint
	ExpectedTransactions string `json:"expectedTransactions" example:"https://example.com/api/v1/expected-transactions"` // URL of the expected transaction collection endpoint
	CreditPurchases      string `json:"creditPurchases" example:"https://example.com/api/v1/credit-purchases"`           // URL of the credit purchase collection endpoint
	Projects             string `json:"projects" example:"https://example.com/api/v1/projects"`                          // URL of the project collection endpoint
	Categories           string `json:"categories" example:"https://example.com/api/v1/categories"`                      // URL of the category collection endpoint
	HouseholdMembers     string `json:"householdMembers" example:"https://example.com/api/v1/household-members"`         // URL of the household member collection endpoint
	PaymentMethods       string `json:"paymentMethods" example:"https://example.com/api/v1/payment-methods"`             // URL of the payment method collection endpoint
	BankAccounts         string `json:"bankAccounts" example:"https://example.com/api/v1/bank-accounts"`                 // URL of the bank account collection endpoint
	Profile              string `json:"profile" example:"https://example.com/api/v1/profile"`                            // URL of the profile endpoint
	Insights             string `json:"insights" example:"https://example.com/api/v1/insights/balance"`                  // URL of the balance insight endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions:         url + "/transactions",
			ExpectedTransactions: url + "/expected-transactions",
			CreditPurchases:      url + "/credit-purchases",
			Projects:             url + "/projects",
			Categories:           url + "/categories",
			HouseholdMembers:     url + "/household-members",
			PaymentMethods:       url + "/payment-methods",
			BankAccounts:         url + "/bank-accounts",
			Profile:              url + "/profile",
			Insights:             url + "/insights/balance",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Cleanup permanently deletes all data
//
//	@Summary		Delete everything
//	@Description	Resets all financial data: transactions, projects, expected transactions, categories and the profile. The stored snapshot is dropped as well.
//	@Tags			v1
//	@Success		204
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	co.Store.ResetAllData()

	if err := co.Snapshots.Clear(context.Background()); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
