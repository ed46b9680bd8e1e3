package shopping

import (
	"github.com/gin-gonic/gin"
)

// Routes mounts the shopping list endpoints. The shopping list is open to every authenticated
// user, teachers included.
func Routes(r *gin.RouterGroup, handler Handler) {
	r.GET("/shopping-items", handler.FindAll)
	r.POST("/shopping-items", handler.Create)
	r.PUT("/shopping-items/:id", handler.Update)
	r.DELETE("/shopping-items/:id", handler.Delete)

	r.GET("/shopping-items/:id/notes", handler.FindNotes)
	r.POST("/shopping-items/:id/notes", handler.CreateNote)
	r.DELETE("/shopping-items/:id/notes/:noteId", handler.DeleteNote)
}
