package dashboard

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /dashboard behind the guard level configured as
// dashboard.guard.
func RegisterRoutes(r gin.IRouter, handler *Handler, auth *middleware.Authenticator, guardLevel string) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/statistics", auth.ForLevel(guardLevel, "dashboard", "read"), handler.Statistics)
	}
}
