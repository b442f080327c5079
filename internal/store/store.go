package store

import (
	"github.com/himanshu-suthar-simform/skillswap/internal/store/exchange"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/skill"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/skillcategory"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/skillfeedback"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/skillmilestone"
	"github.com/himanshu-suthar-simform/skillswap/internal/store/userskill"
)

type Store struct {
	Exchange       exchange.IStore
	UserSkill      userskill.IStore
	Skill          skill.IStore
	SkillCategory  skillcategory.IStore
	SkillFeedback  skillfeedback.IStore
	SkillMilestone skillmilestone.IStore
}

func New() *Store {
	return &Store{
		Exchange:       exchange.New(),
		UserSkill:      userskill.New(),
		Skill:          skill.New(),
		SkillCategory:  skillcategory.New(),
		SkillFeedback:  skillfeedback.New(),
		SkillMilestone: skillmilestone.New(),
	}
}
