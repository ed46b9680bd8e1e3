package user

import (
	"context"
	"net/http"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/ws-vt/technik-manager/internal/errdef"
	"github.com/ws-vt/technik-manager/internal/handler"

	"github.com/ws-vt/technik-manager/pkg/config"
	"github.com/ws-vt/technik-manager/pkg/token"
	"github.com/gin-gonic/gin"
)

func NewHandler(config config.Config, userService userService, tokenService tokenService) Handler {
	return Handler{
		config,
		userService,
		tokenService,
	}
}

type Handler struct {
	config       config.Config
	userService  userService
	tokenService tokenService
}

type userService interface {
	SignUp(ctx context.Context, username string, password string, isTeacher bool) (*model.User, error)
	FindById(ctx context.Context, id uint) (*model.User, error)
}

type tokenService interface {
	GetTokens(user *model.User, previousTokenId string, rememberMe bool) (*token.Tokens, error)
	ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error)
	SignOut(userId uint) error
}

type SignUpRequest struct {
	Username  string `json:"username" binding:"required,gte=2,lte=64"`
	Password  string `json:"password" binding:"required,gte=4,lte=128"`
	IsTeacher bool   `json:"isTeacher"`
}

// SignUp user
func (h Handler) SignUp(c *gin.Context) {
	// swagger:route POST /users signUp
	//
	// SignUp user
	//
	// Sign up a user. Accounts flagged as teacher get read-only access to events and inventory.
	//
	// responses:
	//   201: User
	//   400: Error
	//   409: Error
	//   415: Error
	var request SignUpRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), request.Username, request.Password, request.IsTeacher)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// SignIn user
func (h Handler) SignIn(c *gin.Context) {
	// swagger:route POST /tokens signIn
	//
	// Sign in
	//
	// Sign in... And get tokens
	//
	// security:
	//   basicAuth:
	//
	// responses:
	//   201: Tokens
	//   401: Error
	//   404: Error
	//   415: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rememberMe := c.Query("rememberMe") == "true"

	tokens, err := h.tokenService.GetTokens(user, "", rememberMe)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setCookies(c, tokens, rememberMe)
	c.JSON(http.StatusCreated, tokens)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken user
func (h Handler) RefreshToken(c *gin.Context) {
	// swagger:route POST /refresh refreshToken
	//
	// Refresh tokens
	//
	// Refresh user tokens. The refresh token is taken from the request body or, failing that,
	// from the refreshToken cookie.
	//
	// responses:
	//   201: Tokens
	//   400: Error
	//   401: Error
	//   415: Error
	var request RefreshTokenRequest
	if c.Request.ContentLength > 0 {
		if err := handler.DataBinder(c, &request); err != nil {
			_ = c.Error(err)
			return
		}
	}

	tokenString := request.RefreshToken
	if tokenString == "" {
		cookie, err := c.Cookie("refreshToken")
		if err != nil {
			_ = c.Error(errdef.NewBadRequest("refresh token not found in request body or cookie"))
			return
		}
		tokenString = cookie
	}

	refreshToken, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), tokenString)
	if err != nil {
		_ = c.AbortWithError(http.StatusUnauthorized, err)
		return
	}

	user, err := h.userService.FindById(c.Request.Context(), refreshToken.UserId)
	if err != nil {
		if errdef.IsNotFound(err) {
			_ = c.AbortWithError(http.StatusUnauthorized, err)
		} else {
			_ = c.Error(err)
		}
		return
	}

	rememberMe, _ := c.Cookie("rememberMe")

	tokens, err := h.tokenService.GetTokens(user, refreshToken.ID.String(), rememberMe == "true")
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setCookies(c, tokens, rememberMe == "true")
	c.JSON(http.StatusCreated, tokens)
}

// Me user
func (h Handler) Me(c *gin.Context) {
	// swagger:route GET /me me
	//
	// User details
	//
	// Current user details
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: User
	//   401: Error
	//   404: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	currentUser, err := h.userService.FindById(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, currentUser)
}

// SignOut user
func (h Handler) SignOut(c *gin.Context) {
	// swagger:route DELETE /users signOut
	//
	// Sign out
	//
	// Sign out user... A JWT can't easily be invalidated so even after calling this endpoint a
	// user can still sign in assuming the JWT isn't expired. However, the token can't be
	// refreshed using the refresh token supplied upon signin
	//
	// security:
	//	oauth2:
	//
	// responses:
	//	200:
	//	401: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.tokenService.SignOut(user.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}

func (h Handler) setCookies(c *gin.Context, tokens *token.Tokens, rememberMe bool) {
	authentication := h.config.Authentication
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", tokens.AccessToken, authentication.AccessTokenExpirationSeconds, "/", h.config.Hostname, true, true)
	refreshExpiration := authentication.RefreshTokenExpirationSeconds
	if rememberMe {
		refreshExpiration = authentication.RefreshTokenRememberMeExpirationSeconds
		c.SetCookie("rememberMe", "true", refreshExpiration, "/refresh", h.config.Hostname, true, true)
	}
	c.SetCookie("refreshToken", tokens.RefreshToken, refreshExpiration, "/refresh", h.config.Hostname, true, true)
}
