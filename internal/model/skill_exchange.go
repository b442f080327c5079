package model

import (
	"gorm.io/gorm"
)

type ExchangeStatus string

const (
	ExchangeStatusPending    ExchangeStatus = "PENDING"
	ExchangeStatusInProgress ExchangeStatus = "IN_PROGRESS"
	ExchangeStatusCompleted  ExchangeStatus = "COMPLETED"
	ExchangeStatusCancelled  ExchangeStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are permitted.
func (s ExchangeStatus) IsTerminal() bool {
	return s == ExchangeStatusCompleted || s == ExchangeStatusCancelled
}

// IsValid reports whether s is one of the known statuses.
func (s ExchangeStatus) IsValid() bool {
	switch s {
	case ExchangeStatusPending, ExchangeStatusInProgress,
		ExchangeStatusCompleted, ExchangeStatusCancelled:
		return true
	}
	return false
}

// SkillExchange records a learner's request to learn a teacher's skill
// and its lifecycle. Status is mutated only through the transition
// engine; rows are never hard-deleted so terminal exchanges remain
// available for history and feedback.
type SkillExchange struct {
	gorm.Model
	UserSkillID    uint           `gorm:"column:user_skill_id;not null;index:idx_skill_exchanges_teacher_status"`
	LearnerID      uint           `gorm:"column:learner_id;not null;index:idx_skill_exchanges_learner_status"`
	OfferedSkillID uint           `gorm:"column:offered_skill_id;not null"`
	Status         ExchangeStatus `gorm:"column:status;type:varchar(20);default:'PENDING';index:idx_skill_exchanges_teacher_status;index:idx_skill_exchanges_learner_status"`
	Reason         string         `gorm:"column:reason;type:text"`

	LearningGoals    string `gorm:"column:learning_goals;type:text"`
	Availability     string `gorm:"column:availability;type:text"`
	ProposedDuration int    `gorm:"column:proposed_duration;not null"`
	Notes            string `gorm:"column:notes;type:text"`

	UserSkill    UserSkill `gorm:"foreignKey:UserSkillID"`
	Learner      User      `gorm:"foreignKey:LearnerID"`
	OfferedSkill UserSkill `gorm:"foreignKey:OfferedSkillID"`
}

func (SkillExchange) TableName() string {
	return "skill_exchanges"
}

// TeacherID returns the owner of the requested teaching skill. The
// UserSkill association must be loaded.
func (e *SkillExchange) TeacherID() uint {
	return e.UserSkill.UserID
}
