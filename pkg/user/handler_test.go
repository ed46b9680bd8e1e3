package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ws-vt/technik-manager/pkg/config"
	"github.com/ws-vt/technik-manager/pkg/model"
	"github.com/ws-vt/technik-manager/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_SignIn_Cookies(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 123, Username: "michel"}
	tokenService := &mockTokenService{}
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", user, "", false).
		Return(tokens, nil)
	handler := NewHandler(testConfig(), userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", user)
	c.Request = newPost(t, "/tokens", nil)

	handler.SignIn(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 2)
	expectedAccessTokenCookie := "accessToken=accessToken; Path=/; Domain=hostname; Max-Age=300; HttpOnly; Secure; SameSite=Strict"
	assert.Equal(t, expectedAccessTokenCookie, cookies[0].Raw)
	expectedRefreshTokenCookie := "refreshToken=refreshToken; Path=/refresh; Domain=hostname; Max-Age=3600; HttpOnly; Secure; SameSite=Strict"
	assert.Equal(t, expectedRefreshTokenCookie, cookies[1].Raw)
	tokenService.AssertExpectations(t)
}

func TestHandler_SignIn_RememberMe(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 123, Username: "michel"}
	tokenService := &mockTokenService{}
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", user, "", true).
		Return(tokens, nil)
	handler := NewHandler(testConfig(), userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", user)
	c.Request = newPost(t, "/tokens?rememberMe=true", nil)

	handler.SignIn(c)

	require.Len(t, c.Errors.Errors(), 0)
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 3)
	expectedRememberMeCookie := "rememberMe=true; Path=/refresh; Domain=hostname; Max-Age=86400; HttpOnly; Secure; SameSite=Strict"
	assert.Equal(t, expectedRememberMeCookie, cookies[1].Raw)
	expectedRefreshTokenCookie := "refreshToken=refreshToken; Path=/refresh; Domain=hostname; Max-Age=86400; HttpOnly; Secure; SameSite=Strict"
	assert.Equal(t, expectedRefreshTokenCookie, cookies[2].Raw)
	tokenService.AssertExpectations(t)
}

func TestHandler_RefreshToken_Cookie(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 123, Username: "michel"}
	userService.
		On("FindById", mock.Anything, uint(123)).
		Return(user, nil)
	tokenService := &mockTokenService{}
	id := uuid.New()
	refreshTokenData := &token.RefreshTokenData{
		SignedToken: "signed-token",
		ID:          id,
		UserId:      123,
	}
	tokenService.
		On("ValidateRefreshToken", mock.Anything, "token").
		Return(refreshTokenData, nil)
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", user, id.String(), false).
		Return(tokens, nil)
	handler := NewHandler(testConfig(), userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	request := newPost(t, "/refresh", nil)
	cookie := &http.Cookie{Name: "refreshToken", Value: "token"}
	require.NoError(t, cookie.Valid())
	request.AddCookie(cookie)
	c.Request = request

	handler.RefreshToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	tokenService.AssertExpectations(t)
	userService.AssertExpectations(t)
}

func TestHandler_RefreshToken_MissingToken(t *testing.T) {
	handler := NewHandler(testConfig(), &mockUserService{}, &mockTokenService{})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/refresh", nil)

	handler.RefreshToken(c)

	require.Len(t, c.Errors, 1)
}

func TestHandler_SignOut(t *testing.T) {
	userService := &mockUserService{}
	tokenService := &mockTokenService{}
	tokenService.
		On("SignOut", uint(123)).
		Return(nil)
	handler := NewHandler(testConfig(), userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newPost(t, "/users", nil)

	handler.SignOut(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	tokenService.AssertExpectations(t)
}

func testConfig() config.Config {
	return config.Config{
		Hostname: "hostname",
		Authentication: config.Authentication{
			AccessTokenExpirationSeconds:            300,
			RefreshTokenExpirationSeconds:           3600,
			RefreshTokenRememberMeExpirationSeconds: 86400,
		},
	}
}

func newPost(t *testing.T, path string, body any) *http.Request {
	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}
	request := httptest.NewRequest(http.MethodPost, path, &reader)
	request.Header.Set("Content-Type", "application/json")
	return request
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) SignUp(ctx context.Context, username string, password string, isTeacher bool) (*model.User, error) {
	called := m.Called(ctx, username, password, isTeacher)
	return called.Get(0).(*model.User), called.Error(1)
}

func (m *mockUserService) FindById(ctx context.Context, id uint) (*model.User, error) {
	called := m.Called(ctx, id)
	return called.Get(0).(*model.User), called.Error(1)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GetTokens(user *model.User, previousTokenId string, rememberMe bool) (*token.Tokens, error) {
	called := m.Called(user, previousTokenId, rememberMe)
	return called.Get(0).(*token.Tokens), called.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error) {
	called := m.Called(ctx, tokenString)
	return called.Get(0).(*token.RefreshTokenData), called.Error(1)
}

func (m *mockTokenService) SignOut(userId uint) error {
	called := m.Called(userId)
	return called.Error(0)
}
