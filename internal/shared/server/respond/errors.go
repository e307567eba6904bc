package respond

import (
	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/shared/fault"
	"streamdesk-backend/internal/shared/telemetry"
)

// ErrorResponse is the bare error body used by the upload routes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs err and writes {"error": message} with the status its kind maps to.
func Error(c *gin.Context, err error) {
	status := record(c, err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: fault.PublicMessage(err)})
}

// Fail logs err and writes the envelope form {"success": false, "error": message}.
func Fail(c *gin.Context, err error) {
	status := record(c, err)
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: fault.PublicMessage(err)})
}

func record(c *gin.Context, err error) int {
	status := fault.Status(err)
	fields := map[string]any{
		"status":     status,
		"code":       fault.Code(err),
		"kind":       fault.KindOf(err).String(),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if err != nil {
		_ = c.Error(err)
	}
	if status >= 500 {
		if err != nil {
			fields["err"] = err.Error()
		}
		telemetry.Error("http.error", fields)
		return status
	}
	telemetry.Warn("http.error", fields)
	return status
}
