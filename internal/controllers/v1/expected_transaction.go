package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
)

// RegisterExpectedTransactionRoutes registers the routes for expected
// transactions with the RouterGroup that is passed.
func (co Controller) RegisterExpectedTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpectedTransactions)
		r.GET("", co.GetExpectedTransactions)
		r.POST("", co.CreateExpectedTransaction)
	}

	// Expected transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsExpectedTransactionDetail)
		r.GET("/:id", co.GetExpectedTransaction)
		r.PATCH("/:id", co.UpdateExpectedTransaction)
		r.DELETE("/:id", co.DeleteExpectedTransaction)
		r.POST("/:id/payments", co.PayExpectedTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExpectedTransactions
// @Success		204
// @Router			/v1/expected-transactions [options]
func OptionsExpectedTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExpectedTransactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expected-transactions/{id} [options]
func (co Controller) OptionsExpectedTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if _, err := co.Store.ExpectedTransaction(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expected transaction
// @Description	Creates a new expected transaction
// @Tags			ExpectedTransactions
// @Produce		json
// @Success		201					{object}	ExpectedTransactionResponse
// @Failure		400					{object}	ExpectedTransactionResponse
// @Param			expectedTransaction	body		ExpectedTransactionEditable	true	"Expected transaction"
// @Router			/v1/expected-transactions [post]
func (co Controller) CreateExpectedTransaction(c *gin.Context) {
	var editable ExpectedTransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	expected, err := co.Store.AddExpectedTransaction(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newExpectedTransaction(c, expected)
	c.JSON(http.StatusCreated, ExpectedTransactionResponse{Data: &data})
}

// @Summary		Get expected transactions
// @Description	Returns a list of expected transactions
// @Tags			ExpectedTransactions
// @Produce		json
// @Success		200	{object}	ExpectedTransactionListResponse
// @Failure		400	{object}	ExpectedTransactionListResponse
// @Router			/v1/expected-transactions [get]
// @Param			type	query	string	false	"Filter by type, income or expense"
// @Param			isPaid	query	bool	false	"Filter by paid state"
func (co Controller) GetExpectedTransactions(c *gin.Context) {
	var filter ExpectedTransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ExpectedTransactionListResponse{
			Error: &e,
		})
		return
	}

	var isPaid bool
	if filter.IsPaid != "" {
		parsed, err := strconv.ParseBool(filter.IsPaid)
		if err != nil {
			e := httputil.ErrInvalidQuery.Error()
			c.JSON(http.StatusBadRequest, ExpectedTransactionListResponse{
				Error: &e,
			})
			return
		}
		isPaid = parsed
	}

	expected := co.Store.ExpectedTransactions()

	data := make([]ExpectedTransaction, 0, len(expected))
	for _, e := range expected {
		if filter.Type != "" && e.Type != models.TransactionType(filter.Type) {
			continue
		}
		if filter.IsPaid != "" && e.IsPaid != isPaid {
			continue
		}

		data = append(data, newExpectedTransaction(c, e))
	}

	c.JSON(http.StatusOK, ExpectedTransactionListResponse{Data: data})
}

// @Summary		Get expected transaction
// @Description	Returns a specific expected transaction
// @Tags			ExpectedTransactions
// @Produce		json
// @Success		200	{object}	ExpectedTransactionResponse
// @Failure		400	{object}	ExpectedTransactionResponse
// @Failure		404	{object}	ExpectedTransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expected-transactions/{id} [get]
func (co Controller) GetExpectedTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	expected, err := co.Store.ExpectedTransaction(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newExpectedTransaction(c, expected)
	c.JSON(http.StatusOK, ExpectedTransactionResponse{Data: &data})
}

// @Summary		Update expected transaction
// @Description	Updates an existing expected transaction. Only values to be updated need to be specified.
// @Tags			ExpectedTransactions
// @Accept			json
// @Produce		json
// @Success		200					{object}	ExpectedTransactionResponse
// @Failure		400					{object}	ExpectedTransactionResponse
// @Failure		404					{object}	ExpectedTransactionResponse
// @Param			id					path		string						true	"ID formatted as string"
// @Param			expectedTransaction	body		ExpectedTransactionEditable	true	"Expected transaction"
// @Router			/v1/expected-transactions/{id} [patch]
func (co Controller) UpdateExpectedTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	existing, err := co.Store.ExpectedTransaction(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	editable := ExpectedTransactionEditable{
		Amount:        existing.Amount,
		Description:   existing.Description,
		Category:      existing.Category,
		Subcategory:   existing.Subcategory,
		DueDate:       existing.DueDate,
		Type:          existing.Type,
		PaymentMethod: existing.PaymentMethod,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	updated := editable.model()
	updated.ID = existing.ID
	updated.IsPaid = existing.IsPaid

	if err := co.Store.UpdateExpectedTransaction(updated); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newExpectedTransaction(c, updated)
	c.JSON(http.StatusOK, ExpectedTransactionResponse{Data: &data})
}

// @Summary		Delete expected transaction
// @Description	Deletes an expected transaction
// @Tags			ExpectedTransactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expected-transactions/{id} [delete]
func (co Controller) DeleteExpectedTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if err := co.Store.DeleteExpectedTransaction(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Pay expected transaction
// @Description	Marks an expected transaction as paid and records the matching transaction. Paying twice is a no-op.
// @Tags			ExpectedTransactions
// @Produce		json
// @Success		200	{object}	ExpectedTransactionResponse
// @Failure		400	{object}	ExpectedTransactionResponse
// @Failure		404	{object}	ExpectedTransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expected-transactions/{id}/payments [post]
func (co Controller) PayExpectedTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	if err := co.Store.MarkExpectedTransactionAsPaid(uri.ID.UUID); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	expected, err := co.Store.ExpectedTransaction(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpectedTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newExpectedTransaction(c, expected)
	c.JSON(http.StatusOK, ExpectedTransactionResponse{Data: &data})
}
