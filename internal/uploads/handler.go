package uploads

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/shared/fault"
	"streamdesk-backend/internal/shared/metrics"
	"streamdesk-backend/internal/shared/server/respond"
)

const (
	// simulatedLatency stands in for storage I/O after a file is accepted.
	simulatedLatency = time.Second
	// multipartOverhead leaves room for boundaries and part headers around the file.
	multipartOverhead = 1 << 20
)

// Handler serves the upload endpoints.
type Handler struct {
	Validator *Validator
	latency   time.Duration
}

// NewHandler constructs a Handler.
func NewHandler(v *Validator) *Handler {
	if v == nil {
		v = NewValidator()
	}
	return &Handler{Validator: v, latency: simulatedLatency}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/upload", h.capabilities)
	rg.POST("/upload", h.upload)
}

type uploadResponse struct {
	Success bool `json:"success"`
	Descriptor
}

type capabilitiesResponse struct {
	Message        string   `json:"message"`
	SupportedTypes []string `json:"supportedTypes"`
	MaxSize        string   `json:"maxSize"`
}

func (h *Handler) capabilities(c *gin.Context) {
	respond.JSON(c, http.StatusOK, capabilitiesResponse{
		Message:        "Upload endpoint is ready. POST multipart/form-data with a \"file\" field.",
		SupportedTypes: SupportedTypes(),
		MaxSize:        maxSizeLabel,
	})
}

func (h *Handler) upload(c *gin.Context) {
	LimitBody(c)

	start := time.Now()
	file, err := FormFile(c, "file")
	if err != nil {
		h.reject(c, err)
		return
	}
	if file != nil {
		c.Set("uploadFileName", file.Name)
	}

	desc, err := h.Validator.Validate(file)
	metrics.ObserveUploadValidationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		h.reject(c, err)
		return
	}

	if err := h.wait(c.Request.Context()); err != nil {
		respond.Error(c, fault.Wrap("upload_aborted", err))
		return
	}

	metrics.IncUploadAccepted()
	respond.JSON(c, http.StatusOK, uploadResponse{Success: true, Descriptor: desc})
}

func (h *Handler) reject(c *gin.Context, err error) {
	metrics.IncUploadRejected(fault.Code(err))
	respond.Error(c, err)
}

// wait blocks only the calling request and ends early when its context is done.
func (h *Handler) wait(ctx context.Context) error {
	if h.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(h.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LimitBody caps the request body at the largest accepted file plus multipart framing.
func LimitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+multipartOverhead)
}

// FormFile reads the metadata of the named multipart part. A request without
// that part, or without a multipart body at all, yields a nil File.
func FormFile(c *gin.Context, field string) (*File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrFileTooLarge
		}
		return nil, nil
	}
	return &File{
		Name: header.Filename,
		Type: header.Header.Get("Content-Type"),
		Size: header.Size,
	}, nil
}
