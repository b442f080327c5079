package controller

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/skill"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/skillcategory"
)

func (c *Controller) ListCategories(ctx context.Context, filter CategoryFilter, page Page) ([]model.SkillCategory, int64, error) {
	categories, total, err := c.store.SkillCategory.List(c.db, skillcategory.Filter{
		Name:   filter.Name,
		Active: filter.Active,
	}, page.Limit(), page.Offset())
	return categories, total, errors.Wrap(err, "failed to list categories")
}

func (c *Controller) GetCategory(ctx context.Context, id uint) (*model.SkillCategory, error) {
	category, err := c.store.SkillCategory.GetByID(c.db, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, errs.NewNotFoundError("category")
		}
		return nil, errors.Wrap(err, "failed to load category")
	}
	return category, nil
}

func (c *Controller) ListSkills(ctx context.Context, filter SkillFilter, page Page) ([]model.Skill, int64, error) {
	if filter.CategoryID != 0 {
		if _, err := c.GetCategory(ctx, filter.CategoryID); err != nil {
			return nil, 0, err
		}
	}

	skills, total, err := c.store.Skill.List(c.db, skill.Filter{
		Name:       filter.Name,
		CategoryID: filter.CategoryID,
		Active:     filter.Active,
	}, page.Limit(), page.Offset())
	return skills, total, errors.Wrap(err, "failed to list skills")
}

func (c *Controller) GetSkill(ctx context.Context, id uint) (*model.Skill, error) {
	skill, err := c.store.Skill.GetByID(c.db, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, errs.NewNotFoundError("skill")
		}
		return nil, errors.Wrap(err, "failed to load skill")
	}
	return skill, nil
}

func (c *Controller) CreateUserSkill(ctx context.Context, userID uint, input CreateUserSkillInput) (*model.UserSkill, error) {
	var created *model.UserSkill

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		skill, err := c.store.Skill.GetByID(tx, input.SkillID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewValidationError("skill", "skill not found")
			}
			return errors.Wrap(err, "failed to load skill")
		}
		if !skill.IsActive || !skill.Category.IsActive {
			return errs.NewValidationError("skill", "this skill is not open for new teaching offers")
		}

		exists, err := c.store.UserSkill.ExistsForUserAndSkill(tx, userID, input.SkillID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing offer")
		}
		if exists {
			return errs.NewValidationError("skill", "you already offer this skill")
		}

		created, err = c.store.UserSkill.Create(tx, &model.UserSkill{
			UserID:             userID,
			SkillID:            input.SkillID,
			ProficiencyLevel:   input.ProficiencyLevel,
			YearsOfExperience:  input.YearsOfExperience,
			LearningOutcomes:   input.LearningOutcomes,
			TeachingMethods:    input.TeachingMethods,
			EstimatedDuration:  input.EstimatedDuration,
			DurationType:       input.DurationType,
			IsActive:           true,
			MaxStudents:        input.MaxStudents,
			AvailableTimeSlots: input.AvailableTimeSlots,
		})
		return errors.Wrap(err, "failed to create teaching skill")
	})
	if err != nil {
		return nil, err
	}

	return c.store.UserSkill.GetByID(c.db, created.ID)
}

func (c *Controller) GetUserSkill(ctx context.Context, id uint) (*model.UserSkill, error) {
	userSkill, err := c.store.UserSkill.GetByID(c.db, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, errs.NewNotFoundError("teaching skill")
		}
		return nil, errors.Wrap(err, "failed to load teaching skill")
	}
	return userSkill, nil
}

func (c *Controller) ListUserSkills(ctx context.Context, viewerID uint, page Page) ([]model.UserSkill, int64, error) {
	userSkills, total, err := c.store.UserSkill.List(c.db, viewerID, page.Limit(), page.Offset())
	return userSkills, total, errors.Wrap(err, "failed to list teaching skills")
}

func (c *Controller) ToggleUserSkillAvailability(ctx context.Context, id, actorID uint) (*model.UserSkill, error) {
	userSkill, err := c.GetUserSkill(ctx, id)
	if err != nil {
		return nil, err
	}
	if userSkill.UserID != actorID {
		return nil, errs.NewAuthorizationError("only the owner can toggle availability")
	}

	// Reactivation is refused while the underlying skill or its
	// category is inactive.
	if !userSkill.IsActive && (!userSkill.Skill.IsActive || !userSkill.Skill.Category.IsActive) {
		return nil, errs.NewValidationError("is_active",
			"cannot activate teaching skill because the skill or its category is inactive")
	}

	if err := c.store.UserSkill.SetActive(c.db, id, !userSkill.IsActive); err != nil {
		return nil, errors.Wrap(err, "failed to toggle availability")
	}
	return c.store.UserSkill.GetByID(c.db, id)
}
