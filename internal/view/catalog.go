package view

import (
	"time"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type SkillCategory struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type Skill struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
}

type UserSkill struct {
	ID                 uint             `json:"id"`
	Teacher            UserBasic        `json:"teacher"`
	Skill              Skill            `json:"skill"`
	ProficiencyLevel   string           `json:"proficiency_level"`
	YearsOfExperience  int              `json:"years_of_experience"`
	LearningOutcomes   string           `json:"learning_outcomes,omitempty"`
	TeachingMethods    string           `json:"teaching_methods,omitempty"`
	EstimatedDuration  int              `json:"estimated_duration"`
	DurationType       string           `json:"duration_type"`
	IsActive           bool             `json:"is_active"`
	MaxStudents        int              `json:"max_students"`
	AvailableTimeSlots string           `json:"available_time_slots,omitempty"`
	Milestones         []SkillMilestone `json:"milestones"`
	CreatedAt          time.Time        `json:"created_at"`
}

type SkillMilestone struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Order          int    `json:"order"`
	EstimatedHours int    `json:"estimated_hours"`
}

type SkillFeedback struct {
	ID            uint      `json:"id"`
	UserSkillID   uint      `json:"user_skill_id"`
	Student       UserBasic `json:"student"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	IsRecommended bool      `json:"is_recommended"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToSkillCategory(c *model.SkillCategory) SkillCategory {
	return SkillCategory{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		IsActive:    c.IsActive,
	}
}

func ToSkillCategories(categories []model.SkillCategory) []SkillCategory {
	out := make([]SkillCategory, 0, len(categories))
	for i := range categories {
		out = append(out, ToSkillCategory(&categories[i]))
	}
	return out
}

func ToSkill(s *model.Skill) Skill {
	return Skill{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		CategoryName: s.Category.Name,
		Description:  s.Description,
		IsActive:     s.IsActive,
	}
}

func ToSkills(skills []model.Skill) []Skill {
	out := make([]Skill, 0, len(skills))
	for i := range skills {
		out = append(out, ToSkill(&skills[i]))
	}
	return out
}

func ToUserSkill(us *model.UserSkill) UserSkill {
	return UserSkill{
		ID:                 us.ID,
		Teacher:            ToUserBasic(&us.User),
		Skill:              ToSkill(&us.Skill),
		ProficiencyLevel:   string(us.ProficiencyLevel),
		YearsOfExperience:  us.YearsOfExperience,
		LearningOutcomes:   us.LearningOutcomes,
		TeachingMethods:    us.TeachingMethods,
		EstimatedDuration:  us.EstimatedDuration,
		DurationType:       string(us.DurationType),
		IsActive:           us.IsActive,
		MaxStudents:        us.MaxStudents,
		AvailableTimeSlots: us.AvailableTimeSlots,
		Milestones:         ToSkillMilestones(us.Milestones),
		CreatedAt:          us.CreatedAt,
	}
}

func ToSkillMilestone(m *model.SkillMilestone) SkillMilestone {
	return SkillMilestone{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Order:          m.Position,
		EstimatedHours: m.EstimatedHours,
	}
}

func ToSkillMilestones(milestones []model.SkillMilestone) []SkillMilestone {
	out := make([]SkillMilestone, 0, len(milestones))
	for i := range milestones {
		out = append(out, ToSkillMilestone(&milestones[i]))
	}
	return out
}

func ToUserSkills(userSkills []model.UserSkill) []UserSkill {
	out := make([]UserSkill, 0, len(userSkills))
	for i := range userSkills {
		out = append(out, ToUserSkill(&userSkills[i]))
	}
	return out
}

func ToSkillFeedback(f *model.SkillFeedback) SkillFeedback {
	return SkillFeedback{
		ID:            f.ID,
		UserSkillID:   f.UserSkillID,
		Student:       ToUserBasic(&f.Student),
		Rating:        f.Rating,
		Comment:       f.Comment,
		IsRecommended: f.IsRecommended,
		CreatedAt:     f.CreatedAt,
	}
}

func ToSkillFeedbackList(feedback []model.SkillFeedback) []SkillFeedback {
	out := make([]SkillFeedback, 0, len(feedback))
	for i := range feedback {
		out = append(out, ToSkillFeedback(&feedback[i]))
	}
	return out
}
