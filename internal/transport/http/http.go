package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/handler"
	"github.com/himanshu-suthar-simform/skillswap/internal/middleware"
	"github.com/himanshu-suthar-simform/skillswap/internal/monitoring"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

func setupCORS(r *gin.Engine, cfg *config.AppConfig) {
	corsOrigins := strings.Split(cfg.ApiServer.AllowedOrigins, ";")
	r.Use(func(c *gin.Context) {
		cors.New(
			cors.Config{
				AllowOrigins: corsOrigins,
				AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS", "HEAD"},
				AllowHeaders: []string{
					"Origin", "Host", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Accept",
					"X-CSRF-Token", "Authorization", "X-Requested-With", "X-Request-ID",
				},
				AllowCredentials: true,
			},
		)(c)
	})
}

func NewHttpServer(
	appConfig *config.AppConfig,
	logger *logger.Logger,
	ctrl controller.IController,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry,
	httpMetrics *monitoring.HTTPMetrics,
	jobStatusManager *monitoring.JobStatusManager,
) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		gin.Recovery(),
		middleware.RequestID(),
		monitoring.HTTPMetricsMiddleware(httpMetrics),
	)
	setupCORS(r, appConfig)

	h := handler.New(appConfig, logger, ctrl, db, metricsRegistry, jobStatusManager)

	// use ginSwagger middleware to serve the API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loadV1Routes(r, h, appConfig, logger)

	return r
}
