package model

import (
	"gorm.io/gorm"
)

// Skill is the base skill record, independent of who teaches it.
type Skill struct {
	gorm.Model
	Name        string `gorm:"column:name;type:varchar(200);not null;uniqueIndex"`
	CategoryID  uint   `gorm:"column:category_id;not null;index"`
	Description string `gorm:"column:description;type:text"`
	IsActive    bool   `gorm:"column:is_active;default:true"`

	Category SkillCategory `gorm:"foreignKey:CategoryID"`
}

func (Skill) TableName() string {
	return "skills"
}
