package skill

import (
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

// Filter narrows List. Zero values mean no constraint; Name matches as
// a case-insensitive substring.
type Filter struct {
	Name       string
	CategoryID uint
	Active     *bool
}

type IStore interface {
	GetByID(tx *gorm.DB, id uint) (*model.Skill, error)
	List(tx *gorm.DB, filter Filter, limit, offset int) ([]model.Skill, int64, error)
	DeleteInactiveUnreferenced(tx *gorm.DB) (int64, error)
}
