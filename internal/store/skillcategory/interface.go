package skillcategory

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

// Filter narrows List. Name matches as a case-insensitive substring.
type Filter struct {
	Name   string
	Active *bool
}

type IStore interface {
	GetByID(tx *gorm.DB, id uint) (*model.SkillCategory, error)
	List(tx *gorm.DB, filter Filter, limit, offset int) ([]model.SkillCategory, int64, error)
	DeleteInactiveEmpty(tx *gorm.DB) (int64, error)
}
