package skillcategory

import (
	"strings"

	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) GetByID(tx *gorm.DB, id uint) (*model.SkillCategory, error) {
	var category model.SkillCategory
	err := tx.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *store) List(tx *gorm.DB, filter Filter, limit, offset int) ([]model.SkillCategory, int64, error) {
	base := tx.Model(&model.SkillCategory{})
	if filter.Name != "" {
		base = base.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Active != nil {
		base = base.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.SkillCategory
	err := base.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// DeleteInactiveEmpty removes inactive categories with no skills.
func (s *store) DeleteInactiveEmpty(tx *gorm.DB) (int64, error) {
	res := tx.Unscoped().
		Where("is_active = ?", false).
		Where("id NOT IN (?)", tx.Model(&model.Skill{}).Select("category_id")).
		Delete(&model.SkillCategory{})
	return res.RowsAffected, res.Error
}
