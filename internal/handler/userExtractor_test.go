package handler

import (
	"testing"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetUserFromContext(t *testing.T) {
	user := &model.User{
		ID:        1000,
		Username:  "ben",
		IsTeacher: false,
	}

	c := &gin.Context{}
	c.Set("user", user)

	u, err := GetUserFromContext(c)
	assert.NoError(t, err)

	assert.Equal(t, uint(1000), u.ID)
	assert.Equal(t, "ben", u.Username)
	assert.False(t, u.IsTeacher)
}

func TestGetUserFromContext_NoUser(t *testing.T) {
	c := &gin.Context{}

	_, err := GetUserFromContext(c)
	assert.EqualError(t, err, "user not found on context")
}
