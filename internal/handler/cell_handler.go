package handler

import (
	"inmate-management-backend/internal/service"
	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CellHandler struct {
	cellService *service.CellService
	log         *zap.Logger
}

func NewCellHandler(cellService *service.CellService, log *zap.Logger) *CellHandler {
	return &CellHandler{
		cellService: cellService,
		log:         log,
	}
}

type assignInmateRequest struct {
	InmateID string `json:"inmateId"`
}

// GetAllCells lists every cell with its occupants
func (h *CellHandler) GetAllCells(c *gin.Context) {
	cells, err := h.cellService.GetAllCells(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, cells)
}

// CreateCell creates a new empty cell
func (h *CellHandler) CreateCell(c *gin.Context) {
	var req service.CreateCellRequest
	if !bindJSON(c, &req) {
		return
	}

	cell, err := h.cellService.CreateCell(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.CreatedResponse(c, cell)
}

// AssignInmate places the inmate named in the body into the cell from the path
func (h *CellHandler) AssignInmate(c *gin.Context) {
	var req assignInmateRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.cellService.AssignInmate(c.Request.Context(), c.Param("id"), req.InmateID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.MessageResponse(c, msg)
}
