package request

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/shared/fault"
)

type sample struct {
	Title   string   `json:"title" binding:"required"`
	ItemIDs []string `json:"itemIds" binding:"omitempty,min=1"`
	Seconds int      `json:"durationSec" binding:"gte=0"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var dst sample
	return BindJSON(c, &dst)
}

func TestBindJSONReportsJSONFieldNames(t *testing.T) {
	err := bind(t, `{"durationSec": 3}`)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := fault.PublicMessage(err); got != "title is required" {
		t.Fatalf("unexpected message %q", got)
	}
	if fault.KindOf(err) != fault.Invalid {
		t.Fatalf("expected invalid kind")
	}
}

func TestBindJSONRejectsMalformedBody(t *testing.T) {
	if err := bind(t, `{"title":`); !errors.Is(err, ErrInvalidBody) {
		t.Fatalf("expected ErrInvalidBody, got %v", err)
	}
}

func TestBindJSONRangeChecks(t *testing.T) {
	err := bind(t, `{"title":"x","durationSec":-1}`)
	if got := fault.PublicMessage(err); got != "durationSec must be at least 0" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestBindJSONAcceptsValidBody(t *testing.T) {
	if err := bind(t, `{"title":"ok","durationSec":10}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
