package handler

import (
	"errors"
	"io"
	"net/http"

	"inmate-management-backend/internal/service"
	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

// respondError maps a service failure to its status code. Anything that is
// not a domain error is logged and hidden behind a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var derr *service.Error
	if errors.As(err, &derr) {
		// validation, duplicate and conflict all surface as 400
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		}
		utils.ErrorResponse(c, status, derr.Message)
		return
	}

	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	utils.ErrorResponse(c, http.StatusInternalServerError, msgInternal)
}

// bindJSON decodes the body into req. An empty body leaves req zeroed so
// validation reports the first missing field.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
