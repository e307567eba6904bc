package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/auth"
	"streamdesk-backend/internal/gallery"
	"streamdesk-backend/internal/ocr"
	"streamdesk-backend/internal/services/health"
	"streamdesk-backend/internal/setlists"
	"streamdesk-backend/internal/shared/config"
	"streamdesk-backend/internal/shared/metrics"
	"streamdesk-backend/internal/shared/server/middleware"
	"streamdesk-backend/internal/uploads"
)

const (
	rateLimitDefault = "DEFAULT"
	rateLimitUpload  = "UPLOAD"

	// maxMultipartMemory keeps a full-size upload in memory during parsing.
	maxMultipartMemory = 8 << 20
)

// RouterDeps carries the handlers mounted under /api.
type RouterDeps struct {
	Config         config.Config
	Health         *health.Service
	UploadHandler  *uploads.Handler
	GalleryHandler *gallery.Handler
	SetlistHandler *setlists.Handler
	OCRHandler     *ocr.Handler
	TwitchAuth     *auth.TwitchService
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		metrics.Middleware(),
	)
	if cfg.RateLimitRPS > 0 {
		uploadRule := middleware.RateLimitRule{Rate: cfg.RateLimitRPS / 5, Burst: max(cfg.RateLimitBurst/5, 1)}
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateLimitDefault,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.RateLimiter,
			Rules: map[string]middleware.RateLimitRule{
				rateLimitDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
				rateLimitUpload:  uploadRule,
			},
		}))
	}

	api := r.Group("/api")
	api.GET("/metrics", metrics.Handler())
	if deps.Health != nil {
		deps.Health.RegisterRoutes(api)
	}
	if deps.UploadHandler != nil {
		deps.UploadHandler.RegisterRoutes(api)
	}
	if deps.GalleryHandler != nil {
		deps.GalleryHandler.RegisterRoutes(api)
	}
	if deps.SetlistHandler != nil {
		deps.SetlistHandler.RegisterRoutes(api)
	}
	if deps.OCRHandler != nil {
		deps.OCRHandler.RegisterRoutes(api)
	}
	if deps.TwitchAuth != nil {
		deps.TwitchAuth.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup puts file-accepting routes in the stricter bucket.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return rateLimitDefault
	}
	switch c.FullPath() {
	case "/api/upload", "/api/ocr":
		return rateLimitUpload
	default:
		return rateLimitDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
