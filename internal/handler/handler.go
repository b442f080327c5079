package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/handler/catalog"
	"github.com/himanshu-suthar-simform/skillswap/internal/handler/exchange"
	"github.com/himanshu-suthar-simform/skillswap/internal/handler/health"
	"github.com/himanshu-suthar-simform/skillswap/internal/handler/metrics"
	"github.com/himanshu-suthar-simform/skillswap/internal/handler/userskill"
	"github.com/himanshu-suthar-simform/skillswap/internal/monitoring"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

type Handler struct {
	ExchangeHandler  exchange.IHandler
	UserSkillHandler userskill.IHandler
	CatalogHandler   catalog.IHandler
	HealthHandler    health.IHealthHandler
	MetricsHandler   *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry,
	jobStatusManager *monitoring.JobStatusManager) *Handler {
	return &Handler{
		ExchangeHandler:  exchange.New(ctrl, logger, appConfig),
		UserSkillHandler: userskill.New(ctrl, logger),
		CatalogHandler:   catalog.New(ctrl, logger),
		HealthHandler:    health.New(appConfig, logger, db, jobStatusManager),
		MetricsHandler:   metrics.NewMetricsHandler(metricsRegistry),
	}
}
