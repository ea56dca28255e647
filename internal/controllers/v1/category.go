package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
)

type CategoryEditable struct {
	ID            string               `json:"id,omitempty" example:"household"` // Readable identifier, generated when empty
	Name          string               `json:"name" example:"Household"`         // Name of the category
	Color         string               `json:"color" example:"#AF52DE"`          // Display color
	Icon          string               `json:"icon,omitempty" example:"home"`    // Display icon
	Subcategories []models.Subcategory `json:"subcategories,omitempty"`          // Subdivisions of the category
}

// model returns the store resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		ID:            editable.ID,
		Name:          editable.Name,
		Color:         editable.Color,
		Icon:          editable.Icon,
		Subcategories: editable.Subcategories,
	}
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                                // List of categories
	Error *string           `json:"error" example:"the category name must not be empty"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                // The category data, if the request was successful
	Error *string          `json:"error" example:"the category name must not be empty"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)

	r.OPTIONS("/:id", OptionsCategoryDetail)
	r.GET("/:id", co.GetCategory)
	r.PATCH("/:id", co.UpdateCategory)
	r.DELETE("/:id", co.DeleteCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category. The ID may be a readable slug, a UUID is generated when it is empty.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{
			Error: &e,
		})
		return
	}

	category, err := co.Store.AddCategory(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Get categories
// @Description	Returns the list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{
		Data: co.Store.Categories(),
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := co.Store.Category(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	existing, err := co.Store.Category(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	editable := CategoryEditable{
		ID:            existing.ID,
		Name:          existing.Name,
		Color:         existing.Color,
		Icon:          existing.Icon,
		Subcategories: existing.Subcategories,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{
			Error: &e,
		})
		return
	}

	updated := editable.model()
	updated.ID = existing.ID

	if err := co.Store.UpdateCategory(updated); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &updated})
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions referencing it keep the dangling ID and fall out of category breakdowns.
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	if err := co.Store.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
