package skillmilestone

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) Create(tx *gorm.DB, milestone *model.SkillMilestone) (*model.SkillMilestone, error) {
	return milestone, tx.Create(milestone).Error
}

// GetForUserSkill loads a milestone only when it belongs to the given
// teaching offer.
func (s *store) GetForUserSkill(tx *gorm.DB, id, userSkillID uint) (*model.SkillMilestone, error) {
	var milestone model.SkillMilestone
	err := tx.
		Where("user_skill_id = ?", userSkillID).
		First(&milestone, id).Error
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *store) ExistsAtPosition(tx *gorm.DB, userSkillID uint, position int) (bool, error) {
	var count int64
	err := tx.Model(&model.SkillMilestone{}).
		Where("user_skill_id = ? AND position = ?", userSkillID, position).
		Count(&count).Error
	return count > 0, err
}

func (s *store) Update(tx *gorm.DB, milestone *model.SkillMilestone) (*model.SkillMilestone, error) {
	return milestone, tx.Save(milestone).Error
}

// Delete removes the row outright so its position can be reused.
func (s *store) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&model.SkillMilestone{}, id).Error
}
