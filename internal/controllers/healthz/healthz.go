package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httperror"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/storage"
)

// RegisterRoutes registers the health endpoint with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, snapshots storage.Snapshots) {
	r.OPTIONS("", Options)
	r.GET("", Get(snapshots))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(snapshots storage.Snapshots) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Storage backends that cannot check their own health are
		// reported as healthy.
		if pinger, ok := snapshots.(storage.Pinger); ok {
			if err := pinger.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusInternalServerError, httperror.New(err))
				return
			}
		}

		c.Status(http.StatusNoContent)
	}
}
