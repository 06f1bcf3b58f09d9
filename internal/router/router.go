// Package router wires services, handlers and middleware into a gin engine.
package router

import (
	"inmate-management-backend/internal/config"
	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/handler"
	"inmate-management-backend/internal/middleware"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/service"
	"inmate-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "inmate-management-backend"

// Deps are the long-lived collaborators the router needs. Publisher, Redis
// and Registry are optional.
type Deps struct {
	Config    *config.Config
	Store     *repository.Store
	Publisher events.Publisher
	Redis     *redis.Client
	Registry  *prometheus.Registry
	Log       *zap.Logger
}

// New builds the HTTP engine with every route mounted
func New(d Deps) *gin.Engine {
	if d.Publisher == nil {
		d.Publisher = events.NopPublisher{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	// Services
	cellService := service.NewCellService(d.Store, d.Publisher, d.Log)
	inmateService := service.NewInmateService(d.Store, d.Publisher, d.Log)
	visitorService := service.NewVisitorService(d.Store, d.Publisher, d.Log)
	dashboardService := service.NewDashboardService(d.Store)

	// Handlers
	cellHandler := handler.NewCellHandler(cellService, d.Log)
	inmateHandler := handler.NewInmateHandler(inmateService, d.Log)
	visitorHandler := handler.NewVisitorHandler(visitorService, d.Log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, d.Log)

	metrics := middleware.NewMetrics(d.Registry)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Log),
		middleware.AccessLog(d.Log),
		metrics.Handler(),
		middleware.CORS(d.Config),
	)

	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.Use(middleware.InvalidateCache(d.Redis, d.Log))
	{
		cells := api.Group("/cells")
		cells.GET("", cellHandler.GetAllCells)
		cells.POST("", cellHandler.CreateCell)
		cells.POST("/:id/assign", cellHandler.AssignInmate)

		inmates := api.Group("/inmates")
		inmates.GET("", inmateHandler.GetAllInmates)
		inmates.POST("", inmateHandler.CreateInmate)

		visitors := api.Group("/visitors")
		visitors.GET("", visitorHandler.GetAllVisitors)
		visitors.POST("", visitorHandler.CreateVisitor)

		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.ResponseCache(d.Redis, d.Config.Redis.CacheTTL, d.Log))
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/activity", dashboardHandler.GetRecentActivity)
		dashboard.GET("/releases", dashboardHandler.GetUpcomingReleases)
	}

	return r
}
