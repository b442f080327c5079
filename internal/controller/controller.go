package controller

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/cache"
	"github.com/himanshu-suthar-simform/skillswap/internal/notifier"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

type Controller struct {
	db       *gorm.DB
	store    *store.Store
	cache    cache.ICache
	notifier notifier.INotifier
	logger   *logger.Logger
	config   *config.AppConfig
}

func New(
	db *gorm.DB,
	s *store.Store,
	c cache.ICache,
	n notifier.INotifier,
	logger *logger.Logger,
	config *config.AppConfig,
) IController {
	return &Controller{
		db:       db,
		store:    s,
		cache:    c,
		notifier: n,
		logger:   logger,
		config:   config,
	}
}
