package catalog

import "github.com/gin-gonic/gin"

type IHandler interface {
	ListCategories(c *gin.Context)
	GetCategory(c *gin.Context)
	ListSkills(c *gin.Context)
	GetSkill(c *gin.Context)
	ListSkillsByCategory(c *gin.Context)
}
