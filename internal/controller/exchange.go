package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/cache"
	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/notifier"
	"github.com/himanshu-suthar-simform/skillswap/internal/store"
)

func (c *Controller) CreateExchange(ctx context.Context, learnerID uint, input CreateExchangeInput) (*model.SkillExchange, error) {
	var created *model.SkillExchange

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		userSkill, err := c.store.UserSkill.GetByID(tx, input.UserSkillID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewValidationError("user_skill", "teaching skill not found")
			}
			return errors.Wrap(err, "failed to load teaching skill")
		}

		if !userSkill.IsActive {
			return errs.NewValidationError("user_skill", "this skill is not currently available for teaching")
		}
		if userSkill.UserID == learnerID {
			return errs.NewValidationError("user_skill", "you cannot request to learn your own teaching skill")
		}

		offered, err := c.store.UserSkill.GetByID(tx, input.OfferedSkillID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewValidationError("offered_skill", "offered skill not found")
			}
			return errors.Wrap(err, "failed to load offered skill")
		}
		if offered.UserID != learnerID {
			return errs.NewValidationError("offered_skill", "offered skill must be one of your own teaching skills")
		}

		exists, err := c.store.Exchange.ExistsActive(tx, learnerID, input.UserSkillID)
		if err != nil {
			return errors.Wrap(err, "failed to check for duplicate exchange")
		}
		if exists {
			return errs.NewValidationError("user_skill", "an active exchange for this skill already exists")
		}

		created, err = c.store.Exchange.Create(tx, &model.SkillExchange{
			UserSkillID:      input.UserSkillID,
			LearnerID:        learnerID,
			OfferedSkillID:   input.OfferedSkillID,
			Status:           model.ExchangeStatusPending,
			LearningGoals:    input.LearningGoals,
			Availability:     input.Availability,
			ProposedDuration: input.ProposedDuration,
			Notes:            input.Notes,
		})
		return errors.Wrap(err, "failed to create exchange")
	})
	if err != nil {
		return nil, err
	}

	created, err = c.store.Exchange.GetByID(c.db, created.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload exchange")
	}

	c.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventExchangeCreated,
		ExchangeID:  created.ID,
		Status:      created.Status,
		ActorID:     learnerID,
		RecipientID: created.TeacherID(),
	})
	c.invalidateExchangeLists(ctx, learnerID, created.TeacherID())

	c.logger.Info("exchange created", map[string]string{
		"exchange_id": strconv.FormatUint(uint64(created.ID), 10),
		"learner_id":  strconv.FormatUint(uint64(learnerID), 10),
	})
	return created, nil
}

func (c *Controller) TransitionExchange(ctx context.Context, exchangeID, actorID uint, target model.ExchangeStatus, reason string) (*model.SkillExchange, error) {
	if !target.IsValid() {
		return nil, errs.NewValidationError("status", "unknown status")
	}
	if target == model.ExchangeStatusPending {
		return nil, errs.NewValidationError("status", "an exchange cannot be moved back to pending")
	}
	reason = strings.TrimSpace(reason)

	var actedAsTeacher bool
	var current *model.SkillExchange

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		ex, err := c.store.Exchange.GetByID(tx, exchangeID)
		if err != nil {
			if isRecordNotFound(err) {
				return errs.NewNotFoundError("exchange")
			}
			return errors.Wrap(err, "failed to load exchange")
		}
		current = ex

		roles := rolesFor(actorID, ex)
		if len(roles) == 0 {
			return errs.NewAuthorizationError("you are not a participant of this exchange")
		}

		if !model.TransitionAllowed(ex.Status, target) {
			return errs.NewInvalidTransitionError(string(ex.Status), string(target))
		}
		if !model.RoleCanTransition(ex.Status, target, roles) {
			return errs.NewAuthorizationError("your role is not allowed to perform this transition")
		}

		if target == model.ExchangeStatusCancelled && reason == "" {
			return errs.NewValidationError("reason", "a reason is required when cancelling an exchange")
		}

		// Accepting counts against the teacher's simultaneous student
		// limit.
		if ex.Status == model.ExchangeStatusPending && target == model.ExchangeStatusInProgress {
			active, err := c.store.Exchange.CountInProgressForUserSkill(tx, ex.UserSkillID)
			if err != nil {
				return errors.Wrap(err, "failed to count active exchanges")
			}
			if active >= int64(ex.UserSkill.MaxStudents) {
				return errs.NewValidationError("status", "maximum student limit reached for this skill")
			}
		}

		// The write is guarded by the status we read above; losing a
		// race to a concurrent transition surfaces as an invalid
		// transition, never as a silent overwrite.
		rows, err := c.store.Exchange.UpdateStatusIfCurrent(tx, ex.ID, ex.Status, target, reason)
		if err != nil {
			return errors.Wrap(err, "failed to update exchange status")
		}
		if rows == 0 {
			return errs.NewInvalidTransitionError(string(ex.Status), string(target))
		}

		actedAsTeacher = hasRole(roles, model.RoleTeacher)
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := c.store.Exchange.GetByID(c.db, exchangeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload exchange")
	}

	recipientID := updated.TeacherID()
	if actedAsTeacher {
		recipientID = updated.LearnerID
	}
	c.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventExchangeStatusChanged,
		ExchangeID:  updated.ID,
		Status:      updated.Status,
		ActorID:     actorID,
		RecipientID: recipientID,
		Reason:      updated.Reason,
	})
	c.invalidateExchangeLists(ctx, updated.LearnerID, updated.TeacherID())

	c.logger.Info("exchange status changed", map[string]string{
		"exchange_id": strconv.FormatUint(uint64(updated.ID), 10),
		"from":        string(current.Status),
		"to":          string(updated.Status),
		"actor_id":    strconv.FormatUint(uint64(actorID), 10),
	})
	return updated, nil
}

func (c *Controller) GetExchange(ctx context.Context, exchangeID, actorID uint) (*model.SkillExchange, error) {
	ex, err := c.store.Exchange.GetByID(c.db, exchangeID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, errs.NewNotFoundError("exchange")
		}
		return nil, errors.Wrap(err, "failed to load exchange")
	}

	if len(rolesFor(actorID, ex)) == 0 {
		return nil, errs.NewAuthorizationError("you are not a participant of this exchange")
	}
	return ex, nil
}

// cachedExchangeList is the shape stored in the list cache.
type cachedExchangeList struct {
	Exchanges []model.SkillExchange `json:"exchanges"`
	Total     int64                 `json:"total"`
}

func (c *Controller) ListExchanges(ctx context.Context, actorID uint, role ExchangeListRole, page Page) ([]model.SkillExchange, int64, error) {
	key := cache.ExchangeListKey(string(role), actorID, page.Page, page.PageSize)
	if role == ListAsAny {
		key = cache.ExchangeListKey("any", actorID, page.Page, page.PageSize)
	}

	var cached cachedExchangeList
	hit, err := c.cache.Get(ctx, key, &cached)
	if err != nil {
		c.logger.Error("exchange list cache read failed", map[string]string{"error": err.Error()})
	}
	if hit {
		return cached.Exchanges, cached.Total, nil
	}

	var (
		exchanges []model.SkillExchange
		total     int64
	)
	switch role {
	case ListAsTeacher:
		exchanges, total, err = c.store.Exchange.ListForTeacher(c.db, actorID, page.Limit(), page.Offset())
	case ListAsLearner:
		exchanges, total, err = c.store.Exchange.ListForLearner(c.db, actorID, page.Limit(), page.Offset())
	default:
		exchanges, total, err = c.store.Exchange.ListForParticipant(c.db, actorID, page.Limit(), page.Offset())
	}
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list exchanges")
	}

	if err := c.cache.Set(ctx, key, cachedExchangeList{Exchanges: exchanges, Total: total}); err != nil {
		c.logger.Error("exchange list cache write failed", map[string]string{"error": err.Error()})
	}
	return exchanges, total, nil
}
