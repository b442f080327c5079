package model

import (
	"gorm.io/gorm"
)

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "BEGINNER"
	ProficiencyIntermediate ProficiencyLevel = "INTERMEDIATE"
	ProficiencyAdvanced     ProficiencyLevel = "ADVANCED"
	ProficiencyExpert       ProficiencyLevel = "EXPERT"
)

type DurationType string

const (
	DurationHours  DurationType = "HOURS"
	DurationDays   DurationType = "DAYS"
	DurationWeeks  DurationType = "WEEKS"
	DurationMonths DurationType = "MONTHS"
)

// UserSkill is a user's teaching offer for a skill. A user can offer a
// given skill only once.
type UserSkill struct {
	gorm.Model
	UserID  uint `gorm:"column:user_id;not null;uniqueIndex:idx_user_skills_user_skill"`
	SkillID uint `gorm:"column:skill_id;not null;uniqueIndex:idx_user_skills_user_skill"`

	ProficiencyLevel  ProficiencyLevel `gorm:"column:proficiency_level;type:varchar(20);default:'INTERMEDIATE'"`
	YearsOfExperience int              `gorm:"column:years_of_experience;not null"`
	LearningOutcomes  string           `gorm:"column:learning_outcomes;type:text"`
	TeachingMethods   string           `gorm:"column:teaching_methods;type:text"`
	EstimatedDuration int              `gorm:"column:estimated_duration;not null"`
	DurationType      DurationType     `gorm:"column:duration_type;type:varchar(10);default:'HOURS'"`

	IsActive           bool   `gorm:"column:is_active;default:true"`
	MaxStudents        int    `gorm:"column:max_students;default:1"`
	AvailableTimeSlots string `gorm:"column:available_time_slots;type:text"`

	User       User             `gorm:"foreignKey:UserID"`
	Skill      Skill            `gorm:"foreignKey:SkillID"`
	Milestones []SkillMilestone `gorm:"foreignKey:UserSkillID"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}
