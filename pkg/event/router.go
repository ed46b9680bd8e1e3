package event

import (
	"github.com/ws-vt/technik-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Routes mounts the event endpoints. Reads and notes are open to every authenticated user,
// mutations are restricted to technicians.
func Routes(r *gin.RouterGroup, authorizationMiddleware middleware.AuthorizationMiddleware, handler Handler) {
	r.GET("/events", handler.FindAll)
	r.GET("/events/:id/notes", handler.FindNotes)
	r.POST("/events/:id/notes", handler.CreateNote)
	r.DELETE("/events/:id/notes/:noteId", handler.DeleteNote)

	technicianRouter := r.Group("")
	technicianRouter.Use(authorizationMiddleware.RequireTechnician)
	technicianRouter.POST("/events", handler.Create)
	technicianRouter.DELETE("/events/:id", handler.Delete)
	technicianRouter.PUT("/events/:id/responsibilities", handler.AssignResponsibilities)
}
