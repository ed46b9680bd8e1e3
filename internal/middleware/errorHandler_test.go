package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler_MapsErrorsToStatusCodes(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "bad request",
			err:            errdef.NewBadRequest("marking is required"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unauthorized",
			err:            errdef.NewUnauthorized("invalid credentials"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "forbidden",
			err:            errdef.NewForbidden("teachers have read-only access"),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "not found",
			err:            errdef.NewNotFound("event not found"),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "duplicated",
			err:            errdef.NewDuplicated("marking %q already exists", "WS VT 5"),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unsupported media type",
			err:            errdef.NewUnsupportedMediaType("only application/json is accepted"),
			expectedStatus: http.StatusUnsupportedMediaType,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(ErrorHandler())
			engine.GET("/fail", func(c *gin.Context) {
				_ = c.Error(test.err)
			})

			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, test.expectedStatus, recorder.Code)
			assert.Equal(t, test.err.Error(), recorder.Body.String())
		})
	}
}

func TestErrorHandler_UnknownErrorsBecomeInternal(t *testing.T) {
	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/fail", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
}
