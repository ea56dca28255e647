package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

// RegisterProjectRoutes registers the routes for financial projects with
// the RouterGroup that is passed.
func (co Controller) RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjects)
		r.GET("", co.GetProjects)
		r.POST("", co.CreateProject)
	}

	r.OPTIONS("/feasibility", OptionsProjectFeasibility)
	r.GET("/feasibility", co.GetProjectFeasibility)

	// Project with ID
	{
		r.OPTIONS("/:id", co.OptionsProjectDetail)
		r.GET("/:id", co.GetProject)
		r.PATCH("/:id", co.UpdateProject)
		r.DELETE("/:id", co.DeleteProject)
		r.POST("/:id/contributions", co.ContributeToProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjects(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects/feasibility [options]
func OptionsProjectFeasibility(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id} [options]
func (co Controller) OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if _, err := co.Store.Project(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create project
// @Description	Creates a new savings project. The monthly investment must fit the household income, infeasible projects are refused.
// @Tags			Projects
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func (co Controller) CreateProject(c *gin.Context) {
	var editable ProjectEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{
			Error: &e,
		})
		return
	}

	project, err := co.Store.AddProject(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		Get projects
// @Description	Returns a list of savings projects
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Router			/v1/projects [get]
func (co Controller) GetProjects(c *gin.Context) {
	projects := co.Store.Projects()

	data := make([]Project, 0, len(projects))
	for _, p := range projects {
		data = append(data, newProject(c, p))
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: data})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id} [get]
func (co Controller) GetProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{
			Error: &e,
		})
		return
	}

	project, err := co.Store.Project(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Update project
// @Description	Updates an existing project. Only values to be updated need to be specified.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects/{id} [patch]
func (co Controller) UpdateProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{
			Error: &e,
		})
		return
	}

	existing, err := co.Store.Project(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	editable := ProjectEditable{
		Name:              existing.Name,
		Description:       existing.Description,
		TargetAmount:      existing.TargetAmount,
		MonthlyInvestment: existing.MonthlyInvestment,
		NumberOfMonths:    existing.NumberOfMonths,
		Color:             existing.Color,
		Icon:              existing.Icon,
		Deadline:          existing.Deadline,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{
			Error: &e,
		})
		return
	}

	updated := editable.model()
	updated.ID = existing.ID
	updated.CurrentAmount = existing.CurrentAmount
	updated.CreatedAt = existing.CreatedAt

	if err := co.Store.UpdateProject(updated); err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	data := newProject(c, updated)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Delete project
// @Description	Deletes a project. The money already contributed stays in the transaction history.
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/projects/{id} [delete]
func (co Controller) DeleteProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	if err := co.Store.DeleteProject(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Contribute to project
// @Description	Moves money into a project and records the matching expense transaction
// @Tags			Projects
// @Produce		json
// @Success		201				{object}	ProjectResponse
// @Failure		400				{object}	ProjectResponse
// @Failure		404				{object}	ProjectResponse
// @Param			id				path		string					true	"ID formatted as string"
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/projects/{id}/contributions [post]
func (co Controller) ContributeToProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{
			Error: &e,
		})
		return
	}

	var editable ContributionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{
			Error: &e,
		})
		return
	}

	project, err := co.Store.ContributeToProject(uri.ID.UUID, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		Check project feasibility
// @Description	Checks whether a monthly investment fits the household income without creating a project
// @Tags			Projects
// @Produce		json
// @Success		200					{object}	FeasibilityResponse
// @Failure		400					{object}	FeasibilityResponse
// @Param			monthlyInvestment	query		string	true	"The monthly investment to check"
// @Router			/v1/projects/feasibility [get]
func (co Controller) GetProjectFeasibility(c *gin.Context) {
	investment, err := decimal.NewFromString(c.Query("monthlyInvestment"))
	if err != nil || !investment.IsPositive() {
		e := errInvestmentNotSet.Error()
		c.JSON(http.StatusBadRequest, FeasibilityResponse{
			Error: &e,
		})
		return
	}

	data := Feasibility{
		Feasible:                 co.Store.IsProjectFeasible(investment),
		MonthlyInvestment:        investment,
		MaximumMonthlyInvestment: co.Store.MaximumMonthlyInvestment(),
		TotalHouseholdIncome:     co.Store.TotalHouseholdIncome(),
	}
	c.JSON(http.StatusOK, FeasibilityResponse{Data: &data})
}
