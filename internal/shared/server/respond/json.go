package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the response shape shared by the mock producers.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 success envelope around data.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 success envelope around data.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, Envelope{Success: true, Data: data})
}
