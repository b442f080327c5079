package exchange

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/middleware"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
	"github.com/himanshu-suthar-simform/skillswap/internal/view"
)

type CreateExchangeRequest struct {
	TeacherSkill     uint   `json:"teacher_skill" binding:"required"`
	OfferedSkill     uint   `json:"offered_skill" binding:"required"`
	LearningGoals    string `json:"learning_goals"`
	Availability     string `json:"availability"`
	ProposedDuration int    `json:"proposed_duration" binding:"required,min=1"`
	Notes            string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type CreateFeedbackRequest struct {
	Rating        float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment       string  `json:"comment" binding:"required"`
	IsRecommended *bool   `json:"is_recommended"`
}

type handler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(controller controller.IController, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
		appConfig:  appConfig,
	}
}

// Create godoc
// @Summary Create skill exchange
// @Description Opens a pending exchange request against a teaching skill
// @id createExchange
// @Tags Exchange
// @Accept json
// @Produce json
// @Param request body CreateExchangeRequest true "Exchange request parameters"
// @Success 201 {object} view.SkillExchange
// @Failure 400 {object} view.ErrorResponse
// @Failure 500 {object} view.ErrorResponse
// @Router /exchanges [post]
func (h *handler) Create(c *gin.Context) {
	var req CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[CreateExchange][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, bindingError(err), "invalid request"))
		return
	}

	ex, err := h.controller.CreateExchange(c.Request.Context(), middleware.ActorID(c), controller.CreateExchangeInput{
		UserSkillID:      req.TeacherSkill,
		OfferedSkillID:   req.OfferedSkill,
		LearningGoals:    req.LearningGoals,
		Availability:     req.Availability,
		ProposedDuration: req.ProposedDuration,
		Notes:            req.Notes,
	})
	if err != nil {
		h.respondError(c, "CreateExchange", err)
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(view.ToSkillExchange(ex), nil, ""))
}

// Get godoc
// @Summary Get skill exchange
// @Description Returns one exchange; participants only
// @id getExchange
// @Tags Exchange
// @Produce json
// @Param id path int true "Exchange ID"
// @Success 200 {object} view.SkillExchange
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /exchanges/{id} [get]
func (h *handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ex, err := h.controller.GetExchange(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		h.respondError(c, "GetExchange", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToSkillExchange(ex), nil, ""))
}

// List godoc
// @Summary List skill exchanges
// @Description Lists the actor's exchanges. role=teacher returns the actionable queue, role=learner the full sent history.
// @id listExchanges
// @Tags Exchange
// @Produce json
// @Param role query string false "Scope: teacher or learner"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} view.PagedResponse[view.SkillExchange]
// @Failure 400 {object} view.ErrorResponse
// @Router /exchanges [get]
func (h *handler) List(c *gin.Context) {
	role := controller.ExchangeListRole(c.Query("role"))
	switch role {
	case controller.ListAsTeacher, controller.ListAsLearner, controller.ListAsAny:
	default:
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil,
			errs.NewValidationError("role", "must be teacher or learner"), "invalid request"))
		return
	}

	page, pageSize := view.PageFromQuery(c.Query("page"), c.Query("page_size"))
	exchanges, total, err := h.controller.ListExchanges(c.Request.Context(), middleware.ActorID(c), role,
		controller.Page{Page: page, PageSize: pageSize})
	if err != nil {
		h.respondError(c, "ListExchanges", err)
		return
	}

	c.JSON(http.StatusOK, view.CreatePagedResponse(view.ToSkillExchanges(exchanges), total, page, pageSize))
}

// UpdateStatus godoc
// @Summary Update exchange status
// @Description Applies a status transition on behalf of the acting participant
// @id updateExchangeStatus
// @Tags Exchange
// @Accept json
// @Produce json
// @Param id path int true "Exchange ID"
// @Param request body UpdateStatusRequest true "Target status and optional reason"
// @Success 200 {object} view.SkillExchange
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /exchanges/{id}/status [patch]
func (h *handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[UpdateStatus][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, bindingError(err), "invalid request"))
		return
	}

	ex, err := h.controller.TransitionExchange(c.Request.Context(), id, middleware.ActorID(c),
		model.ExchangeStatus(req.Status), req.Reason)
	if err != nil {
		h.respondError(c, "UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToSkillExchange(ex), nil, ""))
}

// CreateFeedback godoc
// @Summary Leave feedback
// @Description Records the learner's rating after a completed exchange
// @id createExchangeFeedback
// @Tags Exchange
// @Accept json
// @Produce json
// @Param id path int true "Exchange ID"
// @Param request body CreateFeedbackRequest true "Feedback"
// @Success 201 {object} view.SkillFeedback
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /exchanges/{id}/feedback [post]
func (h *handler) CreateFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, bindingError(err), "invalid request"))
		return
	}

	recommended := true
	if req.IsRecommended != nil {
		recommended = *req.IsRecommended
	}

	feedback, err := h.controller.CreateFeedback(c.Request.Context(), id, middleware.ActorID(c), controller.CreateFeedbackInput{
		Rating:        req.Rating,
		Comment:       req.Comment,
		IsRecommended: recommended,
	})
	if err != nil {
		h.respondError(c, "CreateFeedback", err)
		return
	}
	c.JSON(http.StatusCreated, view.CreateResponse(view.ToSkillFeedback(feedback), nil, ""))
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
	case errs.IsInvalidTransition(err):
		status, message = http.StatusConflict, "conflict"
	}

	if status == http.StatusInternalServerError || errs.IsAuthorization(err) {
		h.logger.Error("["+op+"]", map[string]string{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
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

// bindingError flattens gin binding failures into the field-scoped
// validation shape.
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
