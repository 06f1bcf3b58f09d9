package handler

import (
	"inmate-management-backend/internal/service"
	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the read-only aggregates
type DashboardHandler struct {
	dashboardService *service.DashboardService
	log              *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		log:              log,
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	activity, err := h.dashboardService.GetRecentActivity(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, activity)
}

func (h *DashboardHandler) GetUpcomingReleases(c *gin.Context) {
	releases, err := h.dashboardService.GetUpcomingReleases(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SuccessResponse(c, releases)
}
