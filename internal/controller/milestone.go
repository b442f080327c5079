package controller

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
)

// ownedUserSkill loads a teaching offer and verifies the actor owns it.
func (c *Controller) ownedUserSkill(tx *gorm.DB, userSkillID, actorID uint) (*model.UserSkill, error) {
	userSkill, err := c.store.UserSkill.GetByID(tx, userSkillID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, errs.NewNotFoundError("teaching skill")
		}
		return nil, errors.Wrap(err, "failed to load teaching skill")
	}
	if userSkill.UserID != actorID {
		return nil, errs.NewAuthorizationError("only the owner can manage milestones")
	}
	return userSkill, nil
}

func (c *Controller) AddMilestone(ctx context.Context, userSkillID, actorID uint, input MilestoneInput) (*model.SkillMilestone, error) {
	if input.Position < 1 {
		return nil, errs.NewValidationError("order", "order must be a positive integer")
	}
	if input.EstimatedHours < 1 {
		return nil, errs.NewValidationError("estimated_hours", "estimated hours must be at least 1")
	}

	var created *model.SkillMilestone

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		if _, err := c.ownedUserSkill(tx, userSkillID, actorID); err != nil {
			return err
		}

		taken, err := c.store.SkillMilestone.ExistsAtPosition(tx, userSkillID, input.Position)
		if err != nil {
			return errors.Wrap(err, "failed to check milestone order")
		}
		if taken {
			return errs.NewValidationError("order", "a milestone with this order number already exists")
		}

		created, err = c.store.SkillMilestone.Create(tx, &model.SkillMilestone{
			UserSkillID:    userSkillID,
			Title:          input.Title,
			Description:    input.Description,
			Position:       input.Position,
			EstimatedHours: input.EstimatedHours,
		})
		return errors.Wrap(err, "failed to create milestone")
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Controller) UpdateMilestone(ctx context.Context, userSkillID, milestoneID, actorID uint, input UpdateMilestoneInput) (*model.SkillMilestone, error) {
	var updated *model.SkillMilestone

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		if _, err := c.ownedUserSkill(tx, userSkillID, actorID); err != nil {
			return err
		}

		milestone, err := c.store.SkillMilestone.GetForUserSkill(tx, milestoneID, userSkillID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewNotFoundError("milestone")
			}
			return errors.Wrap(err, "failed to load milestone")
		}

		if input.Position != nil && *input.Position != milestone.Position {
			if *input.Position < 1 {
				return errs.NewValidationError("order", "order must be a positive integer")
			}
			taken, err := c.store.SkillMilestone.ExistsAtPosition(tx, userSkillID, *input.Position)
			if err != nil {
				return errors.Wrap(err, "failed to check milestone order")
			}
			if taken {
				return errs.NewValidationError("order", "a milestone with this order number already exists")
			}
			milestone.Position = *input.Position
		}
		if input.Title != nil {
			if *input.Title == "" {
				return errs.NewValidationError("title", "title cannot be empty")
			}
			milestone.Title = *input.Title
		}
		if input.Description != nil {
			milestone.Description = *input.Description
		}
		if input.EstimatedHours != nil {
			if *input.EstimatedHours < 1 {
				return errs.NewValidationError("estimated_hours", "estimated hours must be at least 1")
			}
			milestone.EstimatedHours = *input.EstimatedHours
		}

		updated, err = c.store.SkillMilestone.Update(tx, milestone)
		return errors.Wrap(err, "failed to update milestone")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Controller) DeleteMilestone(ctx context.Context, userSkillID, milestoneID, actorID uint) error {
	return store.DoInTx(c.db, func(tx *gorm.DB) error {
		if _, err := c.ownedUserSkill(tx, userSkillID, actorID); err != nil {
			return err
		}

		milestone, err := c.store.SkillMilestone.GetForUserSkill(tx, milestoneID, userSkillID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewNotFoundError("milestone")
			}
			return errors.Wrap(err, "failed to load milestone")
		}

		return errors.Wrap(c.store.SkillMilestone.Delete(tx, milestone.ID), "failed to delete milestone")
	})
}
