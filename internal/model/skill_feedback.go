package model

import (
	"gorm.io/gorm"
)

// SkillFeedback is a student's rating of a teaching skill, allowed once
// per (user skill, student) pair after a completed exchange.
type SkillFeedback struct {
	gorm.Model
	UserSkillID   uint    `gorm:"column:user_skill_id;not null;uniqueIndex:idx_skill_feedback_skill_student"`
	StudentID     uint    `gorm:"column:student_id;not null;uniqueIndex:idx_skill_feedback_skill_student"`
	Rating        float64 `gorm:"column:rating;type:numeric(3,2)"`
	Comment       string  `gorm:"column:comment;type:text;not null"`
	IsRecommended bool    `gorm:"column:is_recommended;default:true"`

	UserSkill UserSkill `gorm:"foreignKey:UserSkillID"`
	Student   User      `gorm:"foreignKey:StudentID"`
}

func (SkillFeedback) TableName() string {
	return "skill_feedback"
}
