package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type PaymentMethodEditable struct {
	Type     models.PaymentMethodType `json:"type" example:"creditCard"`         // creditCard, debitCard, bankAccount or cash
	Name     string                   `json:"name" example:"Gold card"`          // Name of the payment method
	CardType models.CardType          `json:"cardType,omitempty" example:"visa"` // Card network, card methods only
	Limit    *decimal.Decimal         `json:"limit,omitempty" example:"500"`     // Spending limit, card methods only
}

// model returns the store resource for the API representation of the editable fields
func (editable PaymentMethodEditable) model() models.PaymentMethod {
	return models.PaymentMethod{
		Type:     editable.Type,
		Name:     editable.Name,
		CardType: editable.CardType,
		Limit:    editable.Limit,
	}
}

type PaymentMethodListResponse struct {
	Data  []models.PaymentMethod `json:"data"`                                                          // List of payment methods
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PaymentMethodResponse struct {
	Data  *models.PaymentMethod `json:"data"`                                                          // The payment method data, if the request was successful
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RemainingLimitResponse struct {
	Data  *RemainingLimit `json:"data"`                                                          // The remaining limit data, if the request was successful
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RemainingLimit struct {
	Limit          *decimal.Decimal `json:"limit,omitempty" example:"500"` // The configured limit
	CurrentUsage   decimal.Decimal  `json:"currentUsage" example:"80"`     // The accumulated usage
	RemainingLimit decimal.Decimal  `json:"remainingLimit" example:"420"`  // Limit minus usage, zero when no limit is set
}

// RegisterPaymentMethodRoutes registers the routes for payment methods
// with the RouterGroup that is passed.
func (co Controller) RegisterPaymentMethodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPaymentMethods)
	r.GET("", co.GetPaymentMethods)
	r.POST("", co.CreatePaymentMethod)

	r.OPTIONS("/:id", OptionsPaymentMethodDetail)
	r.PATCH("/:id", co.UpdatePaymentMethod)
	r.DELETE("/:id", co.DeletePaymentMethod)
	r.GET("/:id/remaining-limit", co.GetRemainingLimit)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PaymentMethods
// @Success		204
// @Router			/v1/payment-methods [options]
func OptionsPaymentMethods(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PaymentMethods
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/payment-methods/{id} [options]
func OptionsPaymentMethodDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create payment method
// @Description	Adds a payment method. Card methods start with zero usage.
// @Tags			PaymentMethods
// @Produce		json
// @Success		201		{object}	PaymentMethodResponse
// @Failure		400		{object}	PaymentMethodResponse
// @Param			method	body		PaymentMethodEditable	true	"Payment method"
// @Router			/v1/payment-methods [post]
func (co Controller) CreatePaymentMethod(c *gin.Context) {
	var editable PaymentMethodEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, PaymentMethodResponse{
			Error: &e,
		})
		return
	}

	method, err := co.Store.AddPaymentMethod(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentMethodResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, PaymentMethodResponse{Data: &method})
}

// @Summary		Get payment methods
// @Description	Returns the configured payment methods
// @Tags			PaymentMethods
// @Produce		json
// @Success		200	{object}	PaymentMethodListResponse
// @Router			/v1/payment-methods [get]
func (co Controller) GetPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, PaymentMethodListResponse{
		Data: co.Store.Profile().PaymentMethods,
	})
}

// @Summary		Update payment method
// @Description	Updates an existing payment method, including correcting its accumulated usage
// @Tags			PaymentMethods
// @Accept			json
// @Produce		json
// @Success		200		{object}	PaymentMethodResponse
// @Failure		400		{object}	PaymentMethodResponse
// @Failure		404		{object}	PaymentMethodResponse
// @Param			id		path		string					true	"ID formatted as string"
// @Param			method	body		PaymentMethodEditable	true	"Payment method"
// @Router			/v1/payment-methods/{id} [patch]
func (co Controller) UpdatePaymentMethod(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, PaymentMethodResponse{
			Error: &e,
		})
		return
	}

	var existing *models.PaymentMethod
	for _, m := range co.Store.Profile().PaymentMethods {
		if m.ID == uri.ID.UUID {
			existing = &m
			break
		}
	}
	if existing == nil {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, PaymentMethodResponse{
			Error: &e,
		})
		return
	}

	editable := PaymentMethodEditable{
		Type:     existing.Type,
		Name:     existing.Name,
		CardType: existing.CardType,
		Limit:    existing.Limit,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, PaymentMethodResponse{
			Error: &e,
		})
		return
	}

	updated := editable.model()
	updated.ID = existing.ID
	updated.CurrentUsage = existing.CurrentUsage

	if err := co.Store.UpdatePaymentMethod(updated); err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentMethodResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PaymentMethodResponse{Data: &updated})
}

// @Summary		Delete payment method
// @Description	Removes a payment method. Transactions keep their embedded copy of it.
// @Tags			PaymentMethods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/payment-methods/{id} [delete]
func (co Controller) DeletePaymentMethod(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if err := co.Store.DeletePaymentMethod(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get remaining limit
// @Description	Returns a card's limit, usage and remaining limit
// @Tags			PaymentMethods
// @Produce		json
// @Success		200	{object}	RemainingLimitResponse
// @Failure		400	{object}	RemainingLimitResponse
// @Failure		404	{object}	RemainingLimitResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/payment-methods/{id}/remaining-limit [get]
func (co Controller) GetRemainingLimit(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, RemainingLimitResponse{
			Error: &e,
		})
		return
	}

	var method *models.PaymentMethod
	for _, m := range co.Store.Profile().PaymentMethods {
		if m.ID == uri.ID.UUID {
			method = &m
			break
		}
	}
	if method == nil {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, RemainingLimitResponse{
			Error: &e,
		})
		return
	}

	data := RemainingLimit{
		Limit:          method.Limit,
		CurrentUsage:   method.CurrentUsage,
		RemainingLimit: co.Store.CardRemainingLimit(method.ID),
	}
	c.JSON(http.StatusOK, RemainingLimitResponse{Data: &data})
}
