package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
	"github.com/himanshu-suthar-simform/skillswap/internal/view"
)

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

// ListCategories godoc
// @Summary List skill categories
// @id listCategories
// @Tags Catalog
// @Produce json
// @Param name query string false "Case-insensitive name search"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} view.PagedResponse[view.SkillCategory]
// @Failure 400 {object} view.ErrorResponse
// @Router /categories [get]
func (h *handler) ListCategories(c *gin.Context) {
	active, ok := activeFromQuery(c)
	if !ok {
		return
	}

	page, pageSize := view.PageFromQuery(c.Query("page"), c.Query("page_size"))
	categories, total, err := h.controller.ListCategories(c.Request.Context(),
		controller.CategoryFilter{Name: c.Query("name"), Active: active},
		controller.Page{Page: page, PageSize: pageSize})
	if err != nil {
		h.respondError(c, "ListCategories", err)
		return
	}
	c.JSON(http.StatusOK, view.CreatePagedResponse(view.ToSkillCategories(categories), total, page, pageSize))
}

// GetCategory godoc
// @Summary Get skill category
// @id getCategory
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} view.SkillCategory
// @Failure 404 {object} view.ErrorResponse
// @Router /categories/{id} [get]
func (h *handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.controller.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "GetCategory", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToSkillCategory(category), nil, ""))
}

// ListSkills godoc
// @Summary List skills
// @id listSkills
// @Tags Catalog
// @Produce json
// @Param name query string false "Case-insensitive name search"
// @Param category query int false "Filter by category ID"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} view.PagedResponse[view.Skill]
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /skills [get]
func (h *handler) ListSkills(c *gin.Context) {
	active, ok := activeFromQuery(c)
	if !ok {
		return
	}

	var categoryID uint
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil,
				errs.NewValidationError("category", "must be a positive integer"), "invalid request"))
			return
		}
		categoryID = uint(parsed)
	}

	page, pageSize := view.PageFromQuery(c.Query("page"), c.Query("page_size"))
	skills, total, err := h.controller.ListSkills(c.Request.Context(),
		controller.SkillFilter{Name: c.Query("name"), CategoryID: categoryID, Active: active},
		controller.Page{Page: page, PageSize: pageSize})
	if err != nil {
		h.respondError(c, "ListSkills", err)
		return
	}
	c.JSON(http.StatusOK, view.CreatePagedResponse(view.ToSkills(skills), total, page, pageSize))
}

// GetSkill godoc
// @Summary Get skill
// @id getSkill
// @Tags Catalog
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} view.Skill
// @Failure 404 {object} view.ErrorResponse
// @Router /skills/{id} [get]
func (h *handler) GetSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	skill, err := h.controller.GetSkill(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "GetSkill", err)
		return
	}
	c.JSON(http.StatusOK, view.CreateResponse(view.ToSkill(skill), nil, ""))
}

// ListSkillsByCategory godoc
// @Summary List skills in a category
// @id listSkillsByCategory
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Param name query string false "Case-insensitive name search"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} view.PagedResponse[view.Skill]
// @Failure 404 {object} view.ErrorResponse
// @Router /categories/{id}/skills [get]
func (h *handler) ListSkillsByCategory(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}
	active, ok := activeFromQuery(c)
	if !ok {
		return
	}

	page, pageSize := view.PageFromQuery(c.Query("page"), c.Query("page_size"))
	skills, total, err := h.controller.ListSkills(c.Request.Context(),
		controller.SkillFilter{Name: c.Query("name"), CategoryID: categoryID, Active: active},
		controller.Page{Page: page, PageSize: pageSize})
	if err != nil {
		h.respondError(c, "ListSkillsByCategory", err)
		return
	}
	c.JSON(http.StatusOK, view.CreatePagedResponse(view.ToSkills(skills), total, page, pageSize))
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errs.IsValidation(err):
		status, message = http.StatusBadRequest, "invalid request"
	case errs.IsNotFound(err):
		status, message = http.StatusNotFound, "not found"
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

// activeFromQuery parses the optional is_active query param. The
// second return is false when the value is present but malformed, in
// which case a 400 has already been written.
func activeFromQuery(c *gin.Context) (*bool, bool) {
	raw := c.Query("is_active")
	if raw == "" {
		return nil, true
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil,
			errs.NewValidationError("is_active", "must be true or false"), "invalid request"))
		return nil, false
	}
	return &active, true
}
