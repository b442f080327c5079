package controller

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
)

func (c *Controller) CreateFeedback(ctx context.Context, exchangeID, studentID uint, input CreateFeedbackInput) (*model.SkillFeedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errs.NewValidationError("rating", "rating must be between 1 and 5")
	}
	if input.Comment == "" {
		return nil, errs.NewValidationError("comment", "a comment is required")
	}

	var created *model.SkillFeedback

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		ex, err := c.store.Exchange.GetByID(tx, exchangeID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewNotFoundError("exchange")
			}
			return errors.Wrap(err, "failed to load exchange")
		}

		if ex.LearnerID != studentID {
			return errs.NewAuthorizationError("only the learner of this exchange can leave feedback")
		}
		if ex.Status != model.ExchangeStatusCompleted {
			return errs.NewValidationError("exchange", "feedback is only allowed after a completed exchange")
		}

		exists, err := c.store.SkillFeedback.ExistsForStudent(tx, ex.UserSkillID, studentID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing feedback")
		}
		if exists {
			return errs.NewValidationError("exchange", "you already left feedback for this teaching skill")
		}

		created, err = c.store.SkillFeedback.Create(tx, &model.SkillFeedback{
			UserSkillID:   ex.UserSkillID,
			StudentID:     studentID,
			Rating:        input.Rating,
			Comment:       input.Comment,
			IsRecommended: input.IsRecommended,
		})
		return errors.Wrap(err, "failed to create feedback")
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Controller) ListFeedback(ctx context.Context, userSkillID uint, page Page) ([]model.SkillFeedback, int64, error) {
	if _, err := c.GetUserSkill(ctx, userSkillID); err != nil {
		return nil, 0, err
	}
	feedback, total, err := c.store.SkillFeedback.ListForUserSkill(c.db, userSkillID, page.Limit(), page.Offset())
	return feedback, total, errors.Wrap(err, "failed to list feedback")
}
