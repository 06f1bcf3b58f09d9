package middleware

import (
	"io"
	"net/http"

	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into the standard 500 error body and
// logs it through zap instead of gin's stderr writer
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
