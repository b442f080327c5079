package skillfeedback

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, feedback *model.SkillFeedback) (*model.SkillFeedback, error)
	ExistsForStudent(tx *gorm.DB, userSkillID, studentID uint) (bool, error)
	ListForUserSkill(tx *gorm.DB, userSkillID uint, limit, offset int) ([]model.SkillFeedback, int64, error)
}
