package userskill

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	ToggleAvailability(c *gin.Context)
	ListFeedback(c *gin.Context)
	AddMilestone(c *gin.Context)
	UpdateMilestone(c *gin.Context)
	DeleteMilestone(c *gin.Context)
}
