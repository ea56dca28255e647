package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BankAccountEditable struct {
	Name           string          `json:"name" example:"Checking"`                // Name of the account
	Balance        decimal.Decimal `json:"balance" example:"1500"`                 // The current balance
	OverdraftLimit decimal.Decimal `json:"overdraftLimit,omitempty" example:"500"` // How far the account may go negative
}

// model returns the store resource for the API representation of the editable fields
func (editable BankAccountEditable) model() models.BankAccount {
	return models.BankAccount{
		Name:           editable.Name,
		Balance:        editable.Balance,
		OverdraftLimit: editable.OverdraftLimit,
	}
}

type BankAccountListResponse struct {
	Data  []models.BankAccount `json:"data"`                                                          // List of bank accounts
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BankAccountResponse struct {
	Data  *models.BankAccount `json:"data"`                                                          // The bank account data, if the request was successful
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterBankAccountRoutes registers the routes for bank accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterBankAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBankAccounts)
	r.GET("", co.GetBankAccounts)
	r.POST("", co.CreateBankAccount)

	r.OPTIONS("/:id", OptionsBankAccountDetail)
	r.PATCH("/:id", co.UpdateBankAccount)
	r.DELETE("/:id", co.DeleteBankAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankAccounts
// @Success		204
// @Router			/v1/bank-accounts [options]
func OptionsBankAccounts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankAccounts
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/bank-accounts/{id} [options]
func OptionsBankAccountDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create bank account
// @Description	Adds a bank account. Its balance is a static figure, transactions do not change it.
// @Tags			BankAccounts
// @Produce		json
// @Success		201		{object}	BankAccountResponse
// @Failure		400		{object}	BankAccountResponse
// @Param			account	body		BankAccountEditable	true	"Bank account"
// @Router			/v1/bank-accounts [post]
func (co Controller) CreateBankAccount(c *gin.Context) {
	var editable BankAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BankAccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Store.AddBankAccount(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, BankAccountResponse{Data: &account})
}

// @Summary		Get bank accounts
// @Description	Returns the configured bank accounts
// @Tags			BankAccounts
// @Produce		json
// @Success		200	{object}	BankAccountListResponse
// @Router			/v1/bank-accounts [get]
func (co Controller) GetBankAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, BankAccountListResponse{
		Data: co.Store.Profile().BankAccounts,
	})
}

// @Summary		Update bank account
// @Description	Updates an existing bank account. Only values to be updated need to be specified.
// @Tags			BankAccounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	BankAccountResponse
// @Failure		400		{object}	BankAccountResponse
// @Failure		404		{object}	BankAccountResponse
// @Param			id		path		string				true	"ID formatted as string"
// @Param			account	body		BankAccountEditable	true	"Bank account"
// @Router			/v1/bank-accounts/{id} [patch]
func (co Controller) UpdateBankAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BankAccountResponse{
			Error: &e,
		})
		return
	}

	var existing *models.BankAccount
	for _, a := range co.Store.Profile().BankAccounts {
		if a.ID == uri.ID.UUID {
			existing = &a
			break
		}
	}
	if existing == nil {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, BankAccountResponse{
			Error: &e,
		})
		return
	}

	editable := BankAccountEditable{
		Name:           existing.Name,
		Balance:        existing.Balance,
		OverdraftLimit: existing.OverdraftLimit,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BankAccountResponse{
			Error: &e,
		})
		return
	}

	updated := editable.model()
	updated.ID = existing.ID

	if err := co.Store.UpdateBankAccount(updated); err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BankAccountResponse{Data: &updated})
}

// @Summary		Delete bank account
// @Description	Removes a bank account
// @Tags			BankAccounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/bank-accounts/{id} [delete]
func (co Controller) DeleteBankAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if err := co.Store.DeleteBankAccount(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
