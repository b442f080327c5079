package model

import (
	"gorm.io/gorm"
)

type SkillCategory struct {
	gorm.Model
	Name        string `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"column:description;type:text"`
	Icon        string `gorm:"column:icon;type:varchar(50)"`
	IsActive    bool   `gorm:"column:is_active;default:true"`

	Skills []Skill `gorm:"foreignKey:CategoryID"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}
