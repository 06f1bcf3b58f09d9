package handler

import (
	"inmate-management-backend/internal/service"
	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VisitorHandler struct {
	visitorService *service.VisitorService
	log            *zap.Logger
}

func NewVisitorHandler(visitorService *service.VisitorService, log *zap.Logger) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitorService,
		log:            log,
	}
}

func (h *VisitorHandler) GetAllVisitors(c *gin.Context) {
	visitors, err := h.visitorService.GetAllVisitors(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, visitors)
}

func (h *VisitorHandler) CreateVisitor(c *gin.Context) {
	var req service.CreateVisitorRequest
	if !bindJSON(c, &req) {
		return
	}

	visitor, err := h.visitorService.CreateVisitor(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, visitor)
}
