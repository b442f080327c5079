package http

import (
	"github.com/gin-gonic/gin"

	"github.com/himanshu-suthar-simform/skillswap/internal/handler"
	"github.com/himanshu-suthar-simform/skillswap/internal/middleware"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	auth := middleware.Auth(appConfig.Auth.JWTSecret, logger)

	// catalog reads are public
	categories := v1.Group("/categories")
	{
		categories.GET("", h.CatalogHandler.ListCategories)
		categories.GET("/:id", h.CatalogHandler.GetCategory)
		categories.GET("/:id/skills", h.CatalogHandler.ListSkillsByCategory)
	}

	skills := v1.Group("/skills")
	{
		skills.GET("", h.CatalogHandler.ListSkills)
		skills.GET("/:id", h.CatalogHandler.GetSkill)
	}

	userSkills := v1.Group("/user-skills")
	{
		userSkills.GET("", h.UserSkillHandler.List)
		userSkills.GET("/:id", h.UserSkillHandler.Get)
		userSkills.GET("/:id/feedback", h.UserSkillHandler.ListFeedback)
		userSkills.POST("", auth, h.UserSkillHandler.Create)
		userSkills.PATCH("/:id/availability", auth, h.UserSkillHandler.ToggleAvailability)
		userSkills.POST("/:id/milestones", auth, h.UserSkillHandler.AddMilestone)
		userSkills.PATCH("/:id/milestones/:milestoneID", auth, h.UserSkillHandler.UpdateMilestone)
		userSkills.DELETE("/:id/milestones/:milestoneID", auth, h.UserSkillHandler.DeleteMilestone)
	}

	exchanges := v1.Group("/exchanges", auth)
	{
		exchanges.POST("", h.ExchangeHandler.Create)
		exchanges.GET("", h.ExchangeHandler.List)
		exchanges.GET("/:id", h.ExchangeHandler.Get)
		exchanges.PATCH("/:id/status", h.ExchangeHandler.UpdateStatus)
		exchanges.POST("/:id/feedback", h.ExchangeHandler.CreateFeedback)
	}

	health := v1.Group("/health")
	{
		health.GET("/db", h.HealthHandler.Database)
		health.GET("/jobs", h.HealthHandler.Jobs)
	}

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)

	// prometheus scrape endpoint
	r.GET("/metrics", h.MetricsHandler.Handler())
}
