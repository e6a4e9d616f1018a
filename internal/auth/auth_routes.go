package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the unauthenticated credential endpoints.
func RegisterRoutes(r gin.IRouter, handler *Handler) {
	r.POST("/signup", handler.Signup)
	r.POST("/signin", handler.Signin)
	r.POST("/changepassword", handler.ChangePassword)
}
