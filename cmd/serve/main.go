// Package classification Technik Manager Service.
//
// Record keeping for the school technical-support team: events, the shared shopping list and the
// equipment inventory, behind a username/password login.
//
//	Version: 0.1.0
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
//	SecurityDefinitions:
//	  basicAuth:
//	    type: basic
//	  oauth2:
//	    type: oauth2
//	    tokenUrl: /tokens
//	    refreshUrl: /refresh
//	    flow: password
//
// swagger:meta
package main

import (
	"log/slog"
	"os"

	"github.com/ws-vt/technik-manager/internal/handler"
	"github.com/ws-vt/technik-manager/internal/log"
	"github.com/ws-vt/technik-manager/internal/middleware"
	"github.com/ws-vt/technik-manager/internal/server"
	"github.com/ws-vt/technik-manager/pkg/config"
	"github.com/ws-vt/technik-manager/pkg/event"
	"github.com/ws-vt/technik-manager/pkg/inventory"
	"github.com/ws-vt/technik-manager/pkg/shopping"
	"github.com/ws-vt/technik-manager/pkg/storage"
	"github.com/ws-vt/technik-manager/pkg/token"
	"github.com/ws-vt/technik-manager/pkg/user"
)

func main() {
	logger := slog.New(log.New(log.NewPrettyJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	redis, err := storage.NewRedis(cfg.Redis.Host, cfg.Redis.Port)
	if err != nil {
		return err
	}

	authentication := cfg.Authentication
	tokenRepository := token.NewRepository(redis)
	tokenService := token.NewService(
		logger,
		tokenRepository,
		authentication.PrivateKey,
		authentication.AccessTokenExpirationSeconds,
		authentication.RefreshTokenSecretKey,
		authentication.RefreshTokenExpirationSeconds,
		authentication.RefreshTokenRememberMeExpirationSeconds,
	)

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository)
	userHandler := user.NewHandler(cfg, userService, tokenService)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(eventRepository)
	eventHandler := event.NewHandler(eventService)

	shoppingRepository := shopping.NewRepository(db)
	shoppingService := shopping.NewService(shoppingRepository)
	shoppingHandler := shopping.NewHandler(shoppingService)

	inventoryRepository := inventory.NewRepository(db)
	inventoryService := inventory.NewService(inventoryRepository)
	inventoryHandler := inventory.NewHandler(cfg.DefaultMarkingPrefix, inventoryService)

	authenticationMiddleware := middleware.NewAuthentication(logger, &authentication.PrivateKey.PublicKey, userService)
	authorizationMiddleware := middleware.NewAuthorization(logger)

	r := server.GetEngine(
		logger,
		cfg.BasePath,
		authenticationMiddleware,
		authorizationMiddleware,
		userHandler,
		eventHandler,
		shoppingHandler,
		inventoryHandler,
	)
	return r.Run()
}
