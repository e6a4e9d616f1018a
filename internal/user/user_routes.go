package user

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, auth *middleware.Authenticator) {
	users := r.Group("/users")
	users.Use(auth.RequireIdentity())
	{
		users.GET("", handler.List)
		users.GET("/:user_id", handler.Get)
		users.DELETE("/:user_id", handler.Delete)
		users.PUT("/makeadmin/:user_id", handler.MakeAdmin)
		users.PUT("/removeadmin/:user_id", handler.RemoveAdmin)
	}
}
