package handler

import (
	"inmate-management-backend/internal/service"
	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InmateHandler struct {
	inmateService *service.InmateService
	log           *zap.Logger
}

func NewInmateHandler(inmateService *service.InmateService, log *zap.Logger) *InmateHandler {
	return &InmateHandler{
		inmateService: inmateService,
		log:           log,
	}
}

// GetAllInmates lists every inmate with the assigned cell number
func (h *InmateHandler) GetAllInmates(c *gin.Context) {
	inmates, err := h.inmateService.GetAllInmates(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, inmates)
}

// CreateInmate registers a new inmate
func (h *InmateHandler) CreateInmate(c *gin.Context) {
	var req service.CreateInmateRequest
	if !bindJSON(c, &req) {
		return
	}

	inmate, err := h.inmateService.CreateInmate(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, inmate)
}
