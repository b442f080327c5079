package userskill

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/middleware"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
	"github.com/himanshu-suthar-simform/skillswap/internal/view"
)

type CreateUserSkillRequest struct {
	Skill              uint   `json:"skill" binding:"required"`
	ProficiencyLevel   string `json:"proficiency_level" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	YearsOfExperience  int    `json:"years_of_experience" binding:"min=0,max=50"`
	LearningOutcomes   string `json:"learning_outcomes" binding:"required"`
	TeachingMethods    string `json:"teaching_methods" binding:"required"`
	EstimatedDuration  int    `json:"estimated_duration" binding:"required,min=1"`
	DurationType       string `json:"duration_type" binding:"omitempty,oneof=HOURS DAYS WEEKS MONTHS"`
	MaxStudents        int    `json:"max_students" binding:"omitempty,min=1,max=10"`
	AvailableTimeSlots string `json:"available_time_slots"`
}

type AddMilestoneRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description"`
	Order          int    `json:"order" binding:"required,min=1"`
	EstimatedHours int    `json:"estimated_hours" binding:"required,min=1"`
}

// UpdateMilestoneRequest is a partial update; absent fields keep their
// current value.
type UpdateMilestoneRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Order          *int    `json:"order"`
	EstimatedHours *int    `json:"estimated_hours"`
}

type handler struct {
	controller controller.IController
	logger     *logger.Logger
}

func New(controller controller.IController, logger *logger.Logger) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
	}
}

// Create godoc
// @Summary Offer a teaching skill
// @id createUserSkill
// @Tags UserSkill
// @Accept json
// @Produce json
// @Param request body CreateUserSkillRequest true "Teaching skill offer"
// @Success 201 {object} view.UserSkill
// @Failure 400 {object} view.ErrorResponse
// @Router /user-skills [post]
func (h *handler) Create(c *gin.Context) {
	var req CreateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, bindingError(err), "invalid request"))
		return
	}

	input := controller.CreateUserSkillInput{
		SkillID:            req.Skill,
		ProficiencyLevel:   model.ProficiencyLevel(req.ProficiencyLevel),
		YearsOfExperience:  req.YearsOfExperience,
		LearningOutcomes:   req.LearningOutcomes,
		TeachingMethods:    req.TeachingMethods,
		EstimatedDuration:  req.EstimatedDuration,
		DurationType:       model.DurationType(req.DurationType),
		MaxStudents:        req.MaxStudents,
		AvailableTimeSlots: req.AvailableTimeSlots,
	}
	if input.ProficiencyLevel == "" {
		input.ProficiencyLevel = model.ProficiencyIntermediate
	}
	if input.DurationType == "" {
		input.DurationType = model.DurationHours
	}
	if input.MaxStudents == 0 {
		input.MaxStudents = 1
	}

	userSkill, err := h.controller.CreateUserSkill(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		h.respondError(c, "CreateUserSkill", err)
		return
	}
	c.JSON(http.StatusCreated, view.CreateResponse(view.ToUserSkill(userSkill), nil, ""))
}

// Get godoc
// @Summary Get a teaching skill
// @id getUserSkill
// @Tags UserSkill
// @Produce json
// @Param id path int true "User skill ID"
// @Success 200 {object} view.UserSkill
// @Failure 404 {object} view.ErrorResponse
// @Router /user-skills/{id} [get]
func (h *handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userSkill, err := h.controller.GetUserSkill(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "GetUserSkill", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToUserSkill(userSkill), nil, ""))
}

// List godoc
// @Summary List teaching skills
// @id listUserSkills
// @Tags UserSkill
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} view.PagedResponse[view.UserSkill]
// @Router /user-skills [get]
func (h *handler) List(c *gin.Context) {
	page, pageSize := view.PageFromQuery(c.Query("page"), c.Query("page_size"))
	userSkills, total, err := h.controller.ListUserSkills(c.Request.Context(), middleware.ActorID(c),
		controller.Page{Page: page, PageSize: pageSize})
	if err != nil {
		h.respondError(c, "ListUserSkills", err)
		return
	}
	c.JSON(http.StatusOK, view.CreatePagedResponse(view.ToUserSkills(userSkills), total, page, pageSize))
}

// ToggleAvailability godoc
// @Summary Toggle teaching skill availability
// @id toggleUserSkillAvailability
// @Tags UserSkill
// @Produce json
// @Param id path int true "User skill ID"
// @Success 200 {object} view.UserSkill
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Router /user-skills/{id}/availability [patch]
func (h *handler) ToggleAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userSkill, err := h.controller.ToggleUserSkillAvailability(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		h.respondError(c, "ToggleUserSkillAvailability", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToUserSkill(userSkill), nil, ""))
}

// ListFeedback godoc
// @Summary List feedback for a teaching skill
// @id listUserSkillFeedback
// @Tags UserSkill
// @Produce json
// @Param id path int true "User skill ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} view.PagedResponse[view.SkillFeedback]
// @Failure 404 {object} view.ErrorResponse
// @Router /user-skills/{id}/feedback [get]
func (h *handler) ListFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	page, pageSize := view.PageFromQuery(c.Query("page"), c.Query("page_size"))
	feedback, total, err := h.controller.ListFeedback(c.Request.Context(), id,
		controller.Page{Page: page, PageSize: pageSize})
	if err != nil {
		h.respondError(c, "ListUserSkillFeedback", err)
		return
	}
	c.JSON(http.StatusOK, view.CreatePagedResponse(view.ToSkillFeedbackList(feedback), total, page, pageSize))
}

// AddMilestone godoc
// @Summary Add a milestone
// @Description Adds a checkpoint to the teaching skill's learning path. Owner only.
// @id addUserSkillMilestone
// @Tags UserSkill
// @Accept json
// @Produce json
// @Param id path int true "User skill ID"
// @Param request body AddMilestoneRequest true "Milestone"
// @Success 201 {object} view.SkillMilestone
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /user-skills/{id}/milestones [post]
func (h *handler) AddMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, bindingError(err), "invalid request"))
		return
	}

	milestone, err := h.controller.AddMilestone(c.Request.Context(), id, middleware.ActorID(c),
		controller.MilestoneInput{
			Title:          req.Title,
			Description:    req.Description,
			Position:       req.Order,
			EstimatedHours: req.EstimatedHours,
		})
	if err != nil {
		h.respondError(c, "AddMilestone", err)
		return
	}
	c.JSON(http.StatusCreated, view.CreateResponse(view.ToSkillMilestone(milestone), nil, ""))
}

// UpdateMilestone godoc
// @Summary Update a milestone
// @Description Partially updates a milestone on the teaching skill. Owner only.
// @id updateUserSkillMilestone
// @Tags UserSkill
// @Accept json
// @Produce json
// @Param id path int true "User skill ID"
// @Param milestoneID path int true "Milestone ID"
// @Param request body UpdateMilestoneRequest true "Fields to change"
// @Success 200 {object} view.SkillMilestone
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /user-skills/{id}/milestones/{milestoneID} [patch]
func (h *handler) UpdateMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	milestoneID, ok := milestonePathID(c)
	if !ok {
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, bindingError(err), "invalid request"))
		return
	}

	milestone, err := h.controller.UpdateMilestone(c.Request.Context(), id, milestoneID, middleware.ActorID(c),
		controller.UpdateMilestoneInput{
			Title:          req.Title,
			Description:    req.Description,
			Position:       req.Order,
			EstimatedHours: req.EstimatedHours,
		})
	if err != nil {
		h.respondError(c, "UpdateMilestone", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToSkillMilestone(milestone), nil, ""))
}

// DeleteMilestone godoc
// @Summary Delete a milestone
// @id deleteUserSkillMilestone
// @Tags UserSkill
// @Produce json
// @Param id path int true "User skill ID"
// @Param milestoneID path int true "Milestone ID"
// @Success 204
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /user-skills/{id}/milestones/{milestoneID} [delete]
func (h *handler) DeleteMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	milestoneID, ok := milestonePathID(c)
	if !ok {
		return
	}

	if err := h.controller.DeleteMilestone(c.Request.Context(), id, milestoneID, middleware.ActorID(c)); err != nil {
		h.respondError(c, "DeleteMilestone", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func milestonePathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("milestoneID"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil,
			errs.NewValidationError("milestoneID", "must be a positive integer"), "invalid request"))
		return 0, false
	}
	return uint(id), true
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errs.IsValidation(err):
		status, message = http.StatusBadRequest, "invalid request"
	case errs.IsNotFound(err):
		status, message = http.StatusNotFound, "not found"
	case errs.IsAuthorization(err):
		status, message = http.StatusForbidden, "forbidden"
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("["+op+"]", map[string]string{"error": err.Error()})
	}
	c.JSON(status, view.CreateResponse[any](nil, err, message))
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil,
			errs.NewValidationError("id", "must be a positive integer"), "invalid request"))
		return 0, false
	}
	return uint(id), true
}

func bindingError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewValidationError("body", err.Error())
	}

	out := &errs.ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), "failed on "+fe.Tag())
	}
	return out
}
