package ocr

import (
	"github.com/gin-gonic/gin"

	"streamdesk-backend/internal/fixtures"
	"streamdesk-backend/internal/shared/server/respond"
	"streamdesk-backend/internal/uploads"
)

// Handler answers OCR requests with a canned extraction result. The image is
// validated with the upload policy but never read.
type Handler struct {
	Validator *uploads.Validator
	Result    func() fixtures.OCRResult
}

// NewHandler constructs a Handler.
func NewHandler(v *uploads.Validator, result func() fixtures.OCRResult) *Handler {
	if v == nil {
		v = uploads.NewValidator()
	}
	return &Handler{Validator: v, Result: result}
}

// RegisterRoutes attaches the OCR route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ocr", h.extract)
}

type extractResponse struct {
	FileName string `json:"fileName"`
	fixtures.OCRResult
}

func (h *Handler) extract(c *gin.Context) {
	uploads.LimitBody(c)

	file, err := uploads.FormFile(c, "file")
	if err != nil {
		respond.Fail(c, err)
		return
	}
	desc, err := h.Validator.Validate(file)
	if err != nil {
		respond.Fail(c, err)
		return
	}
	c.Set("uploadFileName", desc.FileName)

	respond.OK(c, extractResponse{FileName: desc.FileName, OCRResult: h.Result()})
}
