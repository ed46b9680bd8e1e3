package inventory

import (
	"github.com/ws-vt/technik-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Routes mounts the inventory endpoints. Listing and the marking lookup are open to every
// authenticated user, mutations are restricted to technicians.
func Routes(r *gin.RouterGroup, authorizationMiddleware middleware.AuthorizationMiddleware, handler Handler) {
	r.GET("/inventory", handler.FindAll)
	r.GET("/inventory/next-marking", handler.NextMarking)
	r.GET("/inventory/marking-exists", handler.MarkingExists)

	technicianRouter := r.Group("")
	technicianRouter.Use(authorizationMiddleware.RequireTechnician)
	technicianRouter.POST("/inventory", handler.Create)
	technicianRouter.PUT("/inventory/:id", handler.Update)
	technicianRouter.DELETE("/inventory/:id", handler.Delete)
}
