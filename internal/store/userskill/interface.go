package userskill

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, userSkill *model.UserSkill) (*model.UserSkill, error)
	GetByID(tx *gorm.DB, id uint) (*model.UserSkill, error)
	ExistsForUserAndSkill(tx *gorm.DB, userID, skillID uint) (bool, error)
	List(tx *gorm.DB, viewerID uint, limit, offset int) ([]model.UserSkill, int64, error)
	SetActive(tx *gorm.DB, id uint, active bool) error
}
