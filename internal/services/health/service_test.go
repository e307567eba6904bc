package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestStatusReportsUptime(t *testing.T) {
	started := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	s := NewService("1.4.0")
	s.started = started
	s.now = func() time.Time { return started.Add(90*time.Second + 400*time.Millisecond) }

	got := s.Status()
	if got.Status != "ok" || got.Version != "1.4.0" {
		t.Fatalf("unexpected status %+v", got)
	}
	if got.UptimeSeconds != 90 {
		t.Fatalf("expected 90s uptime, got %d", got.UptimeSeconds)
	}
	if !got.Timestamp.Equal(started.Add(90*time.Second + 400*time.Millisecond)) {
		t.Fatalf("unexpected timestamp %v", got.Timestamp)
	}
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService("dev").RegisterRoutes(r.Group("/api"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"status", "version", "uptimeSeconds", "timestamp"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing %q in %v", key, body)
		}
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected status %v", body["status"])
	}
}
