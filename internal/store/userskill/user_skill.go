package userskill

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, userSkill *model.UserSkill) (*model.UserSkill, error) {
	return userSkill, tx.Create(userSkill).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.UserSkill, error) {
	var userSkill model.UserSkill
	err := tx.
		Preload("User").
		Preload("Skill").
		Preload("Skill.Category").
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&userSkill, id).Error
	if err != nil {
		return nil, err
	}
	return &userSkill, nil
}

func (s *Store) ExistsForUserAndSkill(tx *gorm.DB, userID, skillID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.UserSkill{}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Count(&count).Error
	return count > 0, err
}

// List returns active offerings of everyone plus the viewer's own
// inactive ones.
func (s *Store) List(tx *gorm.DB, viewerID uint, limit, offset int) ([]model.UserSkill, int64, error) {
	base := tx.Model(&model.UserSkill{}).
		Where("is_active = ? OR user_id = ?", true, viewerID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userSkills []model.UserSkill
	err := base.
		Preload("User").
		Preload("Skill").
		Preload("Skill.Category").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&userSkills).Error
	if err != nil {
		return nil, 0, err
	}
	return userSkills, total, nil
}

func (s *Store) SetActive(tx *gorm.DB, id uint, active bool) error {
	return tx.Model(&model.UserSkill{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
