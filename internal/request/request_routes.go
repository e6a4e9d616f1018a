package request

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

const (
	resourceRequests = "requests"

	actionList    = "list"
	actionApprove = "approve"
	actionReject  = "reject"
)

// RegisterRoutes mounts /requests. idempotency guards creation when non-nil.
func RegisterRoutes(r gin.IRouter, handler *Handler, auth *middleware.Authenticator, idempotency gin.HandlerFunc) {
	create := []gin.HandlerFunc{auth.RequireIdentity()}
	if idempotency != nil {
		create = append(create, idempotency)
	}
	create = append(create, handler.Create)

	requests := r.Group("/requests")
	{
		requests.POST("", create...)
		requests.GET("", auth.RequireRole(resourceRequests, actionList), handler.ListAll)
		requests.GET("/user/:user_id", auth.RequireIdentity(), handler.ListByUser)
		requests.PUT("/:id", auth.RequireIdentity(), handler.UpdateStatus)
		requests.PUT("/:id/approve", auth.RequireRole(resourceRequests, actionApprove), handler.Approve)
		requests.PUT("/:id/reject", auth.RequireRole(resourceRequests, actionReject), handler.Reject)
		requests.DELETE("/:id", auth.RequireIdentity(), handler.Delete)
	}
}
