package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/himanshu-suthar-simform/skillswap/internal/controller"
	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
	"github.com/himanshu-suthar-simform/skillswap/internal/middleware"
	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/types/environments"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

type MockController struct {
	mock.Mock
}

func (m *MockController) CreateExchange(ctx context.Context, learnerID uint, input controller.CreateExchangeInput) (*model.SkillExchange, error) {
	args := m.Called(ctx, learnerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillExchange), args.Error(1)
}

func (m *MockController) TransitionExchange(ctx context.Context, exchangeID, actorID uint, target model.ExchangeStatus, reason string) (*model.SkillExchange, error) {
	args := m.Called(ctx, exchangeID, actorID, target, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillExchange), args.Error(1)
}

func (m *MockController) GetExchange(ctx context.Context, exchangeID, actorID uint) (*model.SkillExchange, error) {
	args := m.Called(ctx, exchangeID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillExchange), args.Error(1)
}

func (m *MockController) ListExchanges(ctx context.Context, actorID uint, role controller.ExchangeListRole, page controller.Page) ([]model.SkillExchange, int64, error) {
	args := m.Called(ctx, actorID, role, page)
	var list []model.SkillExchange
	if args.Get(0) != nil {
		list = args.Get(0).([]model.SkillExchange)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockController) ListCategories(ctx context.Context, filter controller.CategoryFilter, page controller.Page) ([]model.SkillCategory, int64, error) {
	args := m.Called(ctx, filter, page)
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockController) GetCategory(ctx context.Context, id uint) (*model.SkillCategory, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockController) ListSkills(ctx context.Context, filter controller.SkillFilter, page controller.Page) ([]model.Skill, int64, error) {
	args := m.Called(ctx, filter, page)
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockController) GetSkill(ctx context.Context, id uint) (*model.Skill, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockController) CreateUserSkill(ctx context.Context, userID uint, input controller.CreateUserSkillInput) (*model.UserSkill, error) {
	args := m.Called(ctx, userID, input)
	return nil, args.Error(1)
}

func (m *MockController) GetUserSkill(ctx context.Context, id uint) (*model.UserSkill, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockController) ListUserSkills(ctx context.Context, viewerID uint, page controller.Page) ([]model.UserSkill, int64, error) {
	args := m.Called(ctx, viewerID, page)
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockController) ToggleUserSkillAvailability(ctx context.Context, id, actorID uint) (*model.UserSkill, error) {
	args := m.Called(ctx, id, actorID)
	return nil, args.Error(1)
}

func (m *MockController) AddMilestone(ctx context.Context, userSkillID, actorID uint, input controller.MilestoneInput) (*model.SkillMilestone, error) {
	args := m.Called(ctx, userSkillID, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillMilestone), args.Error(1)
}

func (m *MockController) UpdateMilestone(ctx context.Context, userSkillID, milestoneID, actorID uint, input controller.UpdateMilestoneInput) (*model.SkillMilestone, error) {
	args := m.Called(ctx, userSkillID, milestoneID, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillMilestone), args.Error(1)
}

func (m *MockController) DeleteMilestone(ctx context.Context, userSkillID, milestoneID, actorID uint) error {
	args := m.Called(ctx, userSkillID, milestoneID, actorID)
	return args.Error(0)
}

func (m *MockController) CreateFeedback(ctx context.Context, exchangeID, studentID uint, input controller.CreateFeedbackInput) (*model.SkillFeedback, error) {
	args := m.Called(ctx, exchangeID, studentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillFeedback), args.Error(1)
}

func (m *MockController) ListFeedback(ctx context.Context, userSkillID uint, page controller.Page) ([]model.SkillFeedback, int64, error) {
	args := m.Called(ctx, userSkillID, page)
	return nil, args.Get(1).(int64), args.Error(2)
}

func newTestRouter(ctrl controller.IController, actorID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(ctrl, logger.New(environments.Test), &config.AppConfig{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ActorIDKey, actorID)
		c.Next()
	})
	r.POST("/api/v1/exchanges", h.Create)
	r.GET("/api/v1/exchanges/:id", h.Get)
	r.PATCH("/api/v1/exchanges/:id/status", h.UpdateStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleExchange(status model.ExchangeStatus) *model.SkillExchange {
	ex := &model.SkillExchange{
		UserSkillID:    1,
		LearnerID:      2,
		OfferedSkillID: 3,
		Status:         status,
	}
	ex.ID = 10
	return ex
}

func TestCreate(t *testing.T) {
	ctrl := new(MockController)
	ctrl.On("CreateExchange", mock.Anything, uint(2), mock.Anything).
		Return(sampleExchange(model.ExchangeStatusPending), nil)

	r := newTestRouter(ctrl, 2)
	w := doJSON(t, r, "POST", "/api/v1/exchanges", gin.H{
		"teacher_skill":     1,
		"offered_skill":     3,
		"proposed_duration": 5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
	ctrl.AssertExpectations(t)
}

func TestCreate_BindingErrors(t *testing.T) {
	ctrl := new(MockController)
	r := newTestRouter(ctrl, 2)

	w := doJSON(t, r, "POST", "/api/v1/exchanges", gin.H{"teacher_skill": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "errors")
	ctrl.AssertNotCalled(t, "CreateExchange")
}

func TestUpdateStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", errs.NewValidationError("reason", "a reason is required when cancelling an exchange"), http.StatusBadRequest},
		{"not found", errs.NewNotFoundError("exchange"), http.StatusNotFound},
		{"authorization", errs.NewAuthorizationError("your role is not allowed to perform this transition"), http.StatusForbidden},
		{"invalid transition", errs.NewInvalidTransitionError("COMPLETED", "CANCELLED"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := new(MockController)
			ctrl.On("TransitionExchange", mock.Anything, uint(10), uint(2),
				model.ExchangeStatusCancelled, "whatever").
				Return(nil, tt.err)

			r := newTestRouter(ctrl, 2)
			w := doJSON(t, r, "PATCH", "/api/v1/exchanges/10/status", gin.H{
				"status": "CANCELLED",
				"reason": "whatever",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	ctrl := new(MockController)
	ctrl.On("TransitionExchange", mock.Anything, uint(10), uint(1),
		model.ExchangeStatusInProgress, "").
		Return(sampleExchange(model.ExchangeStatusInProgress), nil)

	r := newTestRouter(ctrl, 1)
	w := doJSON(t, r, "PATCH", "/api/v1/exchanges/10/status", gin.H{"status": "IN_PROGRESS"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"IN_PROGRESS"`)
}

func TestUpdateStatus_BadPathID(t *testing.T) {
	ctrl := new(MockController)
	r := newTestRouter(ctrl, 1)

	w := doJSON(t, r, "PATCH", "/api/v1/exchanges/abc/status", gin.H{"status": "IN_PROGRESS"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ctrl.AssertNotCalled(t, "TransitionExchange")
}

func TestGet(t *testing.T) {
	ctrl := new(MockController)
	ctrl.On("GetExchange", mock.Anything, uint(10), uint(2)).
		Return(sampleExchange(model.ExchangeStatusPending), nil)

	r := newTestRouter(ctrl, 2)
	w := doJSON(t, r, "GET", "/api/v1/exchanges/10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGet_NonParticipant(t *testing.T) {
	ctrl := new(MockController)
	ctrl.On("GetExchange", mock.Anything, uint(10), uint(9)).
		Return(nil, errs.NewAuthorizationError("you are not a participant of this exchange"))

	r := newTestRouter(ctrl, 9)
	w := doJSON(t, r, "GET", "/api/v1/exchanges/10", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
