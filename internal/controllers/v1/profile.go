package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
)

type ProfileResponse struct {
	Data  *models.UserProfile `json:"data"`                                                                           // The profile data, if the request was successful
	Error *string             `json:"error" example:"the body of your request contains invalid or un-parseable data"` // The error, if any occurred
}

// RegisterProfileRoutes registers the routes for the user profile with
// the RouterGroup that is passed.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", co.GetProfile)
	r.PATCH("", co.UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the user profile with its household members, payment methods and bank accounts
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	profile := co.Store.Profile()
	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Update profile
// @Description	Applies a partial update to the profile. Only values to be updated need to be specified, the collections are managed through their own endpoints.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Param			profile	body		models.ProfileUpdate	true	"Profile"
// @Router			/v1/profile [patch]
func (co Controller) UpdateProfile(c *gin.Context) {
	var patch models.ProfileUpdate
	if err := httputil.BindData(c, &patch); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{
			Error: &e,
		})
		return
	}

	profile, err := co.Store.UpdateProfile(patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}
