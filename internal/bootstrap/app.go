package bootstrap

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/auth"
	"streamdesk-backend/internal/fixtures"
	"streamdesk-backend/internal/gallery"
	"streamdesk-backend/internal/ocr"
	"streamdesk-backend/internal/services/health"
	"streamdesk-backend/internal/setlists"
	"streamdesk-backend/internal/shared/config"
	"streamdesk-backend/internal/shared/server"
	"streamdesk-backend/internal/shared/server/middleware"
	"streamdesk-backend/internal/shared/telemetry"
	"streamdesk-backend/internal/uploads"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Validator      *uploads.Validator
	RateLimiter    *middleware.RateLimiter
	Health         *health.Service
	UploadHandler  *uploads.Handler
	GalleryHandler *gallery.Handler
	SetlistHandler *setlists.Handler
	OCRHandler     *ocr.Handler
	TwitchAuth     *auth.TwitchService
}

// Build wires fixtures into the handlers and assembles the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	validator := uploads.NewValidator()
	app := &App{
		Config:         cfg,
		Validator:      validator,
		RateLimiter:    middleware.NewRateLimiter(nil),
		Health:         health.NewService(cfg.Version),
		UploadHandler:  uploads.NewHandler(validator),
		GalleryHandler: gallery.NewHandler(fixtures.GalleryItems, fixtures.GalleryGroups),
		SetlistHandler: setlists.NewHandler(fixtures.Setlists),
		OCRHandler:     ocr.NewHandler(validator, fixtures.OCR),
		TwitchAuth: auth.NewTwitchService(
			cfg.TwitchClientID,
			cfg.TwitchClientSecret,
			cfg.TwitchRedirectURL,
			fixtures.StubUser,
		),
	}
	if app.UploadHandler == nil || app.GalleryHandler == nil || app.SetlistHandler == nil {
		return nil, errors.New("failed to initialize handlers")
	}
	if cfg.TwitchClientID == "" {
		telemetry.Warn("bootstrap.twitch_disabled", map[string]any{"env": cfg.Env})
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		Health:         app.Health,
		UploadHandler:  app.UploadHandler,
		GalleryHandler: app.GalleryHandler,
		SetlistHandler: app.SetlistHandler,
		OCRHandler:     app.OCRHandler,
		TwitchAuth:     app.TwitchAuth,
		RateLimiter:    app.RateLimiter,
	})

	return app, nil
}
