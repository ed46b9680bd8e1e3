package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ws-vt/technik-manager/internal/errdef"
	"github.com/ws-vt/technik-manager/internal/handler"

	"github.com/gin-gonic/gin"
)

func NewAuthorization(logger *slog.Logger) AuthorizationMiddleware {
	return AuthorizationMiddleware{
		logger: logger,
	}
}

type AuthorizationMiddleware struct {
	logger *slog.Logger
}

// RequireTechnician rejects teacher accounts. Teachers have read access to events and inventory
// but never mutate them. The decision is made on the IsTeacher flag of the authenticated user,
// nothing else.
func (m AuthorizationMiddleware) RequireTechnician(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.AbortWithError(http.StatusUnauthorized, err)
		return
	}

	if u.IsTeacher {
		m.logger.WarnContext(c.Request.Context(), "Teacher tried to access a technician restricted endpoint", "user", u.ID)
		_ = c.Error(errdef.NewForbidden("teachers have read-only access"))
		c.Abort()
		return
	}

	// Extra precaution to ensure that no errors has occurred, and it's safe to call c.Next()
	if len(c.Errors.Errors()) > 0 {
		c.Abort()
		return
	} else {
		c.Next()
	}
}
