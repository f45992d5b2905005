package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/apperr"
)

// errorBody mirrors the {error, code} body written by feature handlers.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Recovery returns a middleware that recovers from panics and logs them.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", c.GetString(RequestIDKey),
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
					Error: "internal server error",
					Code:  apperr.CodeInternal,
				})
			}
		}()

		c.Next()
	}
}

// NotFound answers unknown routes with a NOT_FOUND error body.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody{
			Error: "route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
			Code:  apperr.CodeNotFound,
		})
	}
}
