package cleanup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/monitoring"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

// Cleanup removes stale catalog rows that are no longer referenced.
// Skills deactivated by an admin stay in the catalog while user skills
// still point at them; once the last reference is gone they are purged,
// and inactive categories with no remaining skills follow.
type Cleanup struct {
	db        *gorm.DB
	store     *store.Store
	appConfig *config.AppConfig
	logger    *logger.Logger
	metrics   *monitoring.BackgroundJobMetrics
}

func New(db *gorm.DB, store *store.Store, appConfig *config.AppConfig, logger *logger.Logger, metrics *monitoring.BackgroundJobMetrics) *Cleanup {
	return &Cleanup{
		db:        db,
		store:     store,
		appConfig: appConfig,
		logger:    logger,
		metrics:   metrics,
	}
}

// PurgeInactiveCatalog deletes inactive skills with no user skills
// referencing them, then inactive categories left with no skills.
// Skills go first so that emptied categories are caught in the same run.
func (c *Cleanup) PurgeInactiveCatalog() error {
	c.logger.Info("[PurgeInactiveCatalog] Start catalog cleanup...")

	var skillsDeleted, categoriesDeleted int64

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		var err error

		skillsDeleted, err = c.store.Skill.DeleteInactiveUnreferenced(tx)
		if err != nil {
			return err
		}

		categoriesDeleted, err = c.store.SkillCategory.DeleteInactiveEmpty(tx)
		return err
	})
	if err != nil {
		c.logger.Error("[PurgeInactiveCatalog] failed", map[string]string{
			"error": err.Error(),
		})
		return err
	}

	if c.metrics != nil {
		c.metrics.RecordRowsDeleted("skill", skillsDeleted)
		c.metrics.RecordRowsDeleted("skill_category", categoriesDeleted)
	}

	c.logger.Info("[PurgeInactiveCatalog] Catalog cleanup finished", map[string]string{
		"skills_deleted":     fmt.Sprintf("%d", skillsDeleted),
		"categories_deleted": fmt.Sprintf("%d", categoriesDeleted),
	})

	return nil
}
