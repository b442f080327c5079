package skill

import (
	"strings"

	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) GetByID(tx *gorm.DB, id uint) (*model.Skill, error) {
	var skill model.Skill
	err := tx.Preload("Category").First(&skill, id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *store) List(tx *gorm.DB, filter Filter, limit, offset int) ([]model.Skill, int64, error) {
	base := tx.Model(&model.Skill{})
	if filter.Name != "" {
		base = base.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.CategoryID != 0 {
		base = base.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Active != nil {
		base = base.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []model.Skill
	err := base.
		Preload("Category").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

// DeleteInactiveUnreferenced removes inactive skills no teacher offers.
func (s *store) DeleteInactiveUnreferenced(tx *gorm.DB) (int64, error) {
	res := tx.Unscoped().
		Where("is_active = ?", false).
		Where("id NOT IN (?)", tx.Model(&model.UserSkill{}).Select("skill_id")).
		Delete(&model.Skill{})
	return res.RowsAffected, res.Error
}
