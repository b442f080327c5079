package controller

import (
	"context"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

// Page is a 1-based pagination request.
type Page struct {
	Page     int
	PageSize int
}

func (p Page) Limit() int {
	return p.PageSize
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ExchangeListRole scopes an exchange list query.
type ExchangeListRole string

const (
	ListAsTeacher ExchangeListRole = "teacher"
	ListAsLearner ExchangeListRole = "learner"
	ListAsAny     ExchangeListRole = ""
)

type CreateExchangeInput struct {
	UserSkillID      uint
	OfferedSkillID   uint
	LearningGoals    string
	Availability     string
	ProposedDuration int
	Notes            string
}

type CreateUserSkillInput struct {
	SkillID            uint
	ProficiencyLevel   model.ProficiencyLevel
	YearsOfExperience  int
	LearningOutcomes   string
	TeachingMethods    string
	EstimatedDuration  int
	DurationType       model.DurationType
	MaxStudents        int
	AvailableTimeSlots string
}

type CreateFeedbackInput struct {
	Rating        float64
	Comment       string
	IsRecommended bool
}

type MilestoneInput struct {
	Title          string
	Description    string
	Position       int
	EstimatedHours int
}

// UpdateMilestoneInput carries a partial update; nil fields keep their
// current value.
type UpdateMilestoneInput struct {
	Title          *string
	Description    *string
	Position       *int
	EstimatedHours *int
}

// CategoryFilter narrows a category list query. Name matches as a
// case-insensitive substring.
type CategoryFilter struct {
	Name   string
	Active *bool
}

// SkillFilter narrows a skill list query.
type SkillFilter struct {
	Name       string
	CategoryID uint
	Active     *bool
}

type IController interface {
	// CreateExchange opens a PENDING exchange from learner against a
	// teaching skill, offering one of the learner's own skills in
	// return.
	CreateExchange(ctx context.Context, learnerID uint, input CreateExchangeInput) (*model.SkillExchange, error)

	// TransitionExchange applies a status change on behalf of actorID,
	// enforcing the transition table and per-exchange serialization.
	TransitionExchange(ctx context.Context, exchangeID, actorID uint, target model.ExchangeStatus, reason string) (*model.SkillExchange, error)

	// GetExchange returns a single exchange, participants only.
	GetExchange(ctx context.Context, exchangeID, actorID uint) (*model.SkillExchange, error)

	// ListExchanges returns the actor's exchanges scoped by role: the
	// teacher queue holds only actionable items, the learner history
	// every status, unscoped both sides combined.
	ListExchanges(ctx context.Context, actorID uint, role ExchangeListRole, page Page) ([]model.SkillExchange, int64, error)

	ListCategories(ctx context.Context, filter CategoryFilter, page Page) ([]model.SkillCategory, int64, error)
	GetCategory(ctx context.Context, id uint) (*model.SkillCategory, error)
	ListSkills(ctx context.Context, filter SkillFilter, page Page) ([]model.Skill, int64, error)
	GetSkill(ctx context.Context, id uint) (*model.Skill, error)

	CreateUserSkill(ctx context.Context, userID uint, input CreateUserSkillInput) (*model.UserSkill, error)
	GetUserSkill(ctx context.Context, id uint) (*model.UserSkill, error)
	ListUserSkills(ctx context.Context, viewerID uint, page Page) ([]model.UserSkill, int64, error)
	ToggleUserSkillAvailability(ctx context.Context, id, actorID uint) (*model.UserSkill, error)

	// Milestones are checkpoints on a teaching offer's learning path;
	// only the offer's owner can manage them.
	AddMilestone(ctx context.Context, userSkillID, actorID uint, input MilestoneInput) (*model.SkillMilestone, error)
	UpdateMilestone(ctx context.Context, userSkillID, milestoneID, actorID uint, input UpdateMilestoneInput) (*model.SkillMilestone, error)
	DeleteMilestone(ctx context.Context, userSkillID, milestoneID, actorID uint) error

	// CreateFeedback records the learner's rating after a completed
	// exchange.
	CreateFeedback(ctx context.Context, exchangeID, studentID uint, input CreateFeedbackInput) (*model.SkillFeedback, error)
	ListFeedback(ctx context.Context, userSkillID uint, page Page) ([]model.SkillFeedback, int64, error)
}
