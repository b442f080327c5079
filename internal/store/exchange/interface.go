package exchange

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, ex *model.SkillExchange) (*model.SkillExchange, error)
	GetByID(tx *gorm.DB, id uint) (*model.SkillExchange, error)
	ExistsActive(tx *gorm.DB, learnerID, userSkillID uint) (bool, error)
	CountInProgressForUserSkill(tx *gorm.DB, userSkillID uint) (int64, error)
	ListForTeacher(tx *gorm.DB, teacherID uint, limit, offset int) ([]model.SkillExchange, int64, error)
	ListForLearner(tx *gorm.DB, learnerID uint, limit, offset int) ([]model.SkillExchange, int64, error)
	ListForParticipant(tx *gorm.DB, userID uint, limit, offset int) ([]model.SkillExchange, int64, error)
	UpdateStatusIfCurrent(tx *gorm.DB, id uint, from, to model.ExchangeStatus, reason string) (int64, error)
}
