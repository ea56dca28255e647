package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
)

// CreditPurchaseEditable is a transaction paired with the credit terms
// it is financed with.
type CreditPurchaseEditable struct {
	TransactionEditable
	Terms models.CreditTerms `json:"terms"` // The installment terms
}

// RegisterCreditPurchaseRoutes registers the routes for credit purchases
// with the RouterGroup that is passed.
func (co Controller) RegisterCreditPurchaseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCreditPurchases)
	r.GET("", co.GetCreditPurchases)
	r.POST("", co.CreateCreditPurchase)

	r.OPTIONS("/refresh", OptionsCreditPurchaseRefresh)
	r.POST("/refresh", co.RefreshCreditPurchases)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CreditPurchases
// @Success		204
// @Router			/v1/credit-purchases [options]
func OptionsCreditPurchases(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CreditPurchases
// @Success		204
// @Router			/v1/credit-purchases/refresh [options]
func OptionsCreditPurchaseRefresh(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create credit purchase
// @Description	Creates a transaction paid off in monthly installments, together with one expected installment per month
// @Tags			CreditPurchases
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Param			purchase	body		CreditPurchaseEditable	true	"Credit purchase"
// @Router			/v1/credit-purchases [post]
func (co Controller) CreateCreditPurchase(c *gin.Context) {
	var editable CreditPurchaseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Store.AddCreditPurchase(editable.model(), editable.Terms)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Get credit purchases
// @Description	Returns the transactions with an active installment plan
// @Tags			CreditPurchases
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Router			/v1/credit-purchases [get]
func (co Controller) GetCreditPurchases(c *gin.Context) {
	transactions := co.Store.Transactions()

	data := make([]Transaction, 0)
	for _, t := range transactions {
		if !t.IsCreditPurchase {
			continue
		}

		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Refresh credit purchases
// @Description	Recomputes the remaining months and amount of every credit purchase and drops the ones that are fully paid off
// @Tags			CreditPurchases
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Router			/v1/credit-purchases/refresh [post]
func (co Controller) RefreshCreditPurchases(c *gin.Context) {
	co.Store.UpdateCreditPurchaseStatus()
	co.GetCreditPurchases(c)
}
