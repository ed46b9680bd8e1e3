package server

import (
	"log/slog"

	"github.com/ws-vt/technik-manager/internal/middleware"
	"github.com/ws-vt/technik-manager/pkg/event"
	"github.com/ws-vt/technik-manager/pkg/inventory"
	"github.com/ws-vt/technik-manager/pkg/shopping"
	"github.com/ws-vt/technik-manager/pkg/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

func GetEngine(
	logger *slog.Logger,
	basePath string,
	authenticationMiddleware middleware.AuthenticationMiddleware,
	authorizationMiddleware middleware.AuthorizationMiddleware,
	userHandler user.Handler,
	eventHandler event.Handler,
	shoppingHandler shopping.Handler,
	inventoryHandler inventory.Handler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(sloggin.New(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	router.GET("/health", health)

	user.Routes(router, authenticationMiddleware, userHandler)

	tokenAuthenticationRouter := router.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	event.Routes(tokenAuthenticationRouter, authorizationMiddleware, eventHandler)
	shopping.Routes(tokenAuthenticationRouter, shoppingHandler)
	inventory.Routes(tokenAuthenticationRouter, authorizationMiddleware, inventoryHandler)

	return r
}

func health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "up"})
}
