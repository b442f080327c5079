package skillfeedback

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) Create(tx *gorm.DB, feedback *model.SkillFeedback) (*model.SkillFeedback, error) {
	return feedback, tx.Create(feedback).Error
}

func (s *store) ExistsForStudent(tx *gorm.DB, userSkillID, studentID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.SkillFeedback{}).
		Where("user_skill_id = ? AND student_id = ?", userSkillID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (s *store) ListForUserSkill(tx *gorm.DB, userSkillID uint, limit, offset int) ([]model.SkillFeedback, int64, error) {
	base := tx.Model(&model.SkillFeedback{}).
		Where("user_skill_id = ?", userSkillID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var feedback []model.SkillFeedback
	err := base.
		Preload("Student").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&feedback).Error
	if err != nil {
		return nil, 0, err
	}
	return feedback, total, nil
}
