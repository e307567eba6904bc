package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/shared/server/respond"
)

// Service reports liveness along with build and uptime details.
type Service struct {
	version string
	started time.Time
	now     func() time.Time
}

// NewService constructs a new health service.
func NewService(version string) *Service {
	return &Service{version: version, started: time.Now(), now: time.Now}
}

// Status is the health payload.
type Status struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
	Timestamp     time.Time `json:"timestamp"`
}

// Status returns the current health payload.
func (s *Service) Status() Status {
	now := s.now()
	return Status{
		Status:        "ok",
		Version:       s.version,
		UptimeSeconds: int64(now.Sub(s.started) / time.Second),
		Timestamp:     now.UTC(),
	}
}

// RegisterRoutes attaches the health route to the router group.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, s.Status())
	})
}
