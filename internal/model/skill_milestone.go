package model

import (
	"gorm.io/gorm"
)

// SkillMilestone is a checkpoint in the learning path of a teaching
// offer. Position is unique within the offer; "order" is reserved in
// SQL, so the column is named position.
type SkillMilestone struct {
	gorm.Model
	UserSkillID    uint   `gorm:"column:user_skill_id;not null;uniqueIndex:idx_skill_milestones_position"`
	Title          string `gorm:"column:title;type:varchar(200);not null"`
	Description    string `gorm:"column:description;type:text"`
	Position       int    `gorm:"column:position;not null;uniqueIndex:idx_skill_milestones_position"`
	EstimatedHours int    `gorm:"column:estimated_hours;not null"`

	UserSkill UserSkill `gorm:"foreignKey:UserSkillID"`
}

func (SkillMilestone) TableName() string {
	return "skill_milestones"
}
