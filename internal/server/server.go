package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/himanshu-suthar-simform/skillswap/internal/cache"
	"github.com/himanshu-suthar-simform/skillswap/internal/cleanup"
	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/monitoring"
	"github.com/himanshu-suthar-simform/skillswap/internal/notifier"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
	pgstore "github.com/himanshu-suthar-simform/skillswap/internal/store/postgres"
	"github.com/himanshu-suthar-simform/skillswap/internal/transport/http"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)

	s := store.New()
	exchangeCache := cache.New(appConfig, logger)
	exchangeNotifier := notifier.New(appConfig, logger)

	ctrl := controller.New(db, s, exchangeCache, exchangeNotifier, logger, appConfig)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)

	jobMetrics := monitoring.NewBackgroundJobMetrics()
	jobMetrics.MustRegister(metricsRegistry)
	jobStatusManager := monitoring.NewJobStatusManager(logger, jobMetrics)

	catalogCleanup := cleanup.New(db, s, appConfig, logger, jobMetrics)
	cleanupJob := monitoring.NewInstrumentedJob(
		"catalog_cleanup",
		catalogCleanup.PurgeInactiveCatalog,
		jobStatusManager,
		logger,
		10*time.Minute,
	)

	c := cron.New()
	if _, err := c.AddFunc(appConfig.Cleanup.Schedule, cleanupJob.Execute); err != nil {
		logger.Error("Failed to schedule catalog cleanup", map[string]string{
			"schedule": appConfig.Cleanup.Schedule,
			"error":    err.Error(),
		})
		return
	}
	c.Start()
	defer c.Stop()

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, db, metricsRegistry, httpMetrics, jobStatusManager)

	httpServer.Run(":" + appConfig.ApiServer.Port)
}
