package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/apperr"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// errorResponse writes err as a JSON error body, logging server-side failures.
func errorResponse(c *gin.Context, logger *zap.SugaredLogger, err error) {
	status, code, message := apperr.Classify(err)
	if status >= 500 {
		logger.Errorw("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}
