package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type HouseholdMemberEditable struct {
	Name         string           `json:"name" example:"Alex"`                  // Name of the member
	Type         models.MemberType `json:"type" example:"adult"`                // adult or child
	Salary       *decimal.Decimal `json:"salary,omitempty" example:"3000"`      // Monthly salary, adults only
	SalaryDate   *time.Time       `json:"salaryDate,omitempty"`                 // When the salary arrives
	Commissions  *decimal.Decimal `json:"commissions,omitempty" example:"200"`  // Monthly commissions, adults only
	FinancialAid *decimal.Decimal `json:"financialAid,omitempty" example:"150"` // Monthly financial aid, adults only
}

// model returns the store resource for the API representation of the editable fields
func (editable HouseholdMemberEditable) model() models.HouseholdMember {
	return models.HouseholdMember{
		Name:         editable.Name,
		Type:         editable.Type,
		Salary:       editable.Salary,
		SalaryDate:   editable.SalaryDate,
		Commissions:  editable.Commissions,
		FinancialAid: editable.FinancialAid,
	}
}

type HouseholdMemberListResponse struct {
	Data  []models.HouseholdMember `json:"data"`                                                          // List of household members
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HouseholdMemberResponse struct {
	Data  *models.HouseholdMember `json:"data"`                                                          // The member data, if the request was successful
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterHouseholdMemberRoutes registers the routes for household
// members with the RouterGroup that is passed.
func (co Controller) RegisterHouseholdMemberRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHouseholdMembers)
	r.GET("", co.GetHouseholdMembers)
	r.POST("", co.CreateHouseholdMember)

	r.OPTIONS("/:id", OptionsHouseholdMemberDetail)
	r.PATCH("/:id", co.UpdateHouseholdMember)
	r.DELETE("/:id", co.DeleteHouseholdMember)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			HouseholdMembers
// @Success		204
// @Router			/v1/household-members [options]
func OptionsHouseholdMembers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			HouseholdMembers
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/household-members/{id} [options]
func OptionsHouseholdMemberDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create household member
// @Description	Adds a member to the household
// @Tags			HouseholdMembers
// @Produce		json
// @Success		201		{object}	HouseholdMemberResponse
// @Failure		400		{object}	HouseholdMemberResponse
// @Param			member	body		HouseholdMemberEditable	true	"Household member"
// @Router			/v1/household-members [post]
func (co Controller) CreateHouseholdMember(c *gin.Context) {
	var editable HouseholdMemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HouseholdMemberResponse{
			Error: &e,
		})
		return
	}

	member, err := co.Store.AddHouseholdMember(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdMemberResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, HouseholdMemberResponse{Data: &member})
}

// @Summary		Get household members
// @Description	Returns the members of the household
// @Tags			HouseholdMembers
// @Produce		json
// @Success		200	{object}	HouseholdMemberListResponse
// @Router			/v1/household-members [get]
func (co Controller) GetHouseholdMembers(c *gin.Context) {
	c.JSON(http.StatusOK, HouseholdMemberListResponse{
		Data: co.Store.Profile().HouseholdMembers,
	})
}

// @Summary		Update household member
// @Description	Updates an existing household member. Only values to be updated need to be specified.
// @Tags			HouseholdMembers
// @Accept			json
// @Produce		json
// @Success		200		{object}	HouseholdMemberResponse
// @Failure		400		{object}	HouseholdMemberResponse
// @Failure		404		{object}	HouseholdMemberResponse
// @Param			id		path		string					true	"ID formatted as string"
// @Param			member	body		HouseholdMemberEditable	true	"Household member"
// @Router			/v1/household-members/{id} [patch]
func (co Controller) UpdateHouseholdMember(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, HouseholdMemberResponse{
			Error: &e,
		})
		return
	}

	var existing *models.HouseholdMember
	for _, m := range co.Store.Profile().HouseholdMembers {
		if m.ID == uri.ID.UUID {
			existing = &m
			break
		}
	}
	if existing == nil {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, HouseholdMemberResponse{
			Error: &e,
		})
		return
	}

	editable := HouseholdMemberEditable{
		Name:         existing.Name,
		Type:         existing.Type,
		Salary:       existing.Salary,
		SalaryDate:   existing.SalaryDate,
		Commissions:  existing.Commissions,
		FinancialAid: existing.FinancialAid,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HouseholdMemberResponse{
			Error: &e,
		})
		return
	}

	updated := editable.model()
	updated.ID = existing.ID

	if err := co.Store.UpdateHouseholdMember(updated); err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdMemberResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, HouseholdMemberResponse{Data: &updated})
}

// @Summary		Delete household member
// @Description	Removes a member from the household
// @Tags			HouseholdMembers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/household-members/{id} [delete]
func (co Controller) DeleteHouseholdMember(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if err := co.Store.DeleteHouseholdMember(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
