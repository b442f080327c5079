package controller

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/cache"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

// rolesFor computes the actor's capability set relative to an
// exchange. The UserSkill association must be loaded on ex.
func rolesFor(actorID uint, ex *model.SkillExchange) []model.ExchangeRole {
	var roles []model.ExchangeRole
	if ex.UserSkill.UserID == actorID {
		roles = append(roles, model.RoleTeacher)
	}
	if ex.LearnerID == actorID {
		roles = append(roles, model.RoleLearner)
	}
	return roles
}

func hasRole(roles []model.ExchangeRole, role model.ExchangeRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// invalidateExchangeLists drops every cached exchange list page of the
// given users after a mutation.
func (c *Controller) invalidateExchangeLists(ctx context.Context, userIDs ...uint) {
	for _, id := range userIDs {
		if err := c.cache.DeletePattern(ctx, cache.ExchangeListPattern(id)); err != nil {
			c.logger.Error("failed to invalidate exchange list cache", map[string]string{
				"user_id": strconv.FormatUint(uint64(id), 10),
				"error":   err.Error(),
			})
		}
	}
}
