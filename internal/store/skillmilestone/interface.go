package skillmilestone

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, milestone *model.SkillMilestone) (*model.SkillMilestone, error)
	GetForUserSkill(tx *gorm.DB, id, userSkillID uint) (*model.SkillMilestone, error)
	ExistsAtPosition(tx *gorm.DB, userSkillID uint, position int) (bool, error)
	Update(tx *gorm.DB, milestone *model.SkillMilestone) (*model.SkillMilestone, error)
	Delete(tx *gorm.DB, id uint) error
}
