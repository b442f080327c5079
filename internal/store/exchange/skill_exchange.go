package exchange

import (
	"time"

	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

// Stable ordering across pagination requests: the id tiebreak keeps
// rows created in the same instant in a fixed order.
const listOrder = "created_at DESC, id DESC"

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, ex *model.SkillExchange) (*model.SkillExchange, error) {
	return ex, tx.Create(ex).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.SkillExchange, error) {
	var ex model.SkillExchange
	err := tx.
		Preload("UserSkill").
		Preload("UserSkill.User").
		Preload("UserSkill.Skill").
		Preload("Learner").
		Preload("OfferedSkill").
		Preload("OfferedSkill.Skill").
		First(&ex, id).Error
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *Store) ExistsActive(tx *gorm.DB, learnerID, userSkillID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.SkillExchange{}).
		Where("learner_id = ? AND user_skill_id = ?", learnerID, userSkillID).
		Where("status IN ?", []model.ExchangeStatus{
			model.ExchangeStatusPending,
			model.ExchangeStatusInProgress,
		}).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CountInProgressForUserSkill(tx *gorm.DB, userSkillID uint) (int64, error) {
	var count int64
	err := tx.Model(&model.SkillExchange{}).
		Where("user_skill_id = ? AND status = ?", userSkillID, model.ExchangeStatusInProgress).
		Count(&count).Error
	return count, err
}

func (s *Store) ListForTeacher(tx *gorm.DB, teacherID uint, limit, offset int) ([]model.SkillExchange, int64, error) {
	// The manage-requests view only shows actionable items, so the
	// teacher-scoped list is restricted to non-terminal statuses.
	base := tx.Model(&model.SkillExchange{}).
		Joins("JOIN user_skills ON user_skills.id = skill_exchanges.user_skill_id").
		Where("user_skills.user_id = ?", teacherID).
		Where("skill_exchanges.status IN ?", []model.ExchangeStatus{
			model.ExchangeStatusPending,
			model.ExchangeStatusInProgress,
		})
	return s.list(base, limit, offset)
}

func (s *Store) ListForLearner(tx *gorm.DB, learnerID uint, limit, offset int) ([]model.SkillExchange, int64, error) {
	base := tx.Model(&model.SkillExchange{}).
		Where("skill_exchanges.learner_id = ?", learnerID)
	return s.list(base, limit, offset)
}

func (s *Store) ListForParticipant(tx *gorm.DB, userID uint, limit, offset int) ([]model.SkillExchange, int64, error) {
	base := tx.Model(&model.SkillExchange{}).
		Joins("JOIN user_skills ON user_skills.id = skill_exchanges.user_skill_id").
		Where("user_skills.user_id = ? OR skill_exchanges.learner_id = ?", userID, userID)
	return s.list(base, limit, offset)
}

func (s *Store) list(base *gorm.DB, limit, offset int) ([]model.SkillExchange, int64, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exchanges []model.SkillExchange
	err := base.
		Preload("UserSkill").
		Preload("UserSkill.User").
		Preload("UserSkill.Skill").
		Preload("Learner").
		Order("skill_exchanges." + listOrder).
		Limit(limit).
		Offset(offset).
		Find(&exchanges).Error
	if err != nil {
		return nil, 0, err
	}
	return exchanges, total, nil
}

// UpdateStatusIfCurrent applies the status change only when the stored
// status still equals from. A zero row count means a concurrent
// transition got there first.
func (s *Store) UpdateStatusIfCurrent(tx *gorm.DB, id uint, from, to model.ExchangeStatus, reason string) (int64, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if to == model.ExchangeStatusCancelled {
		updates["reason"] = reason
	}

	res := tx.Model(&model.SkillExchange{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}
