package view

import (
	"time"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type UserBasic struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type TeacherSkillBasic struct {
	ID               uint   `json:"id"`
	TeacherID        uint   `json:"teacher_id"`
	TeacherName      string `json:"teacher_name"`
	SkillName        string `json:"skill_name"`
	ProficiencyLevel string `json:"proficiency_level"`
}

type SkillExchange struct {
	ID               uint              `json:"id"`
	TeacherSkill     TeacherSkillBasic `json:"teacher_skill"`
	Learner          UserBasic         `json:"learner"`
	OfferedSkillID   uint              `json:"offered_skill_id"`
	Status           string            `json:"status"`
	Reason           string            `json:"reason,omitempty"`
	LearningGoals    string            `json:"learning_goals"`
	Availability     string            `json:"availability"`
	ProposedDuration int               `json:"proposed_duration"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func ToUserBasic(u *model.User) UserBasic {
	return UserBasic{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.DisplayName(),
	}
}

func ToSkillExchange(ex *model.SkillExchange) SkillExchange {
	return SkillExchange{
		ID: ex.ID,
		TeacherSkill: TeacherSkillBasic{
			ID:               ex.UserSkillID,
			TeacherID:        ex.UserSkill.UserID,
			TeacherName:      ex.UserSkill.User.DisplayName(),
			SkillName:        ex.UserSkill.Skill.Name,
			ProficiencyLevel: string(ex.UserSkill.ProficiencyLevel),
		},
		Learner:          ToUserBasic(&ex.Learner),
		OfferedSkillID:   ex.OfferedSkillID,
		Status:           string(ex.Status),
		Reason:           ex.Reason,
		LearningGoals:    ex.LearningGoals,
		Availability:     ex.Availability,
		ProposedDuration: ex.ProposedDuration,
		Notes:            ex.Notes,
		CreatedAt:        ex.CreatedAt,
		UpdatedAt:        ex.UpdatedAt,
	}
}

func ToSkillExchanges(exchanges []model.SkillExchange) []SkillExchange {
	out := make([]SkillExchange, 0, len(exchanges))
	for i := range exchanges {
		out = append(out, ToSkillExchange(&exchanges[i]))
	}
	return out
}
