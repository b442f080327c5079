package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a second pooled connection would see an empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.SkillCategory{},
		&model.Skill{},
		&model.UserSkill{},
		&model.SkillExchange{},
	))

	return db
}

func seedExchange(t *testing.T, db *gorm.DB, status model.ExchangeStatus) *model.SkillExchange {
	t.Helper()

	teacher := model.User{Email: "t@example.com", Username: "t"}
	learner := model.User{Email: "l@example.com", Username: "l"}
	require.NoError(t, db.Create(&teacher).Error)
	require.NoError(t, db.Create(&learner).Error)

	category := model.SkillCategory{Name: "Music", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	guitar := model.Skill{Name: "Guitar", CategoryID: category.ID, IsActive: true}
	piano := model.Skill{Name: "Piano", CategoryID: category.ID, IsActive: true}
	require.NoError(t, db.Create(&guitar).Error)
	require.NoError(t, db.Create(&piano).Error)

	taught := model.UserSkill{UserID: teacher.ID, SkillID: guitar.ID, YearsOfExperience: 5, EstimatedDuration: 8, IsActive: true, MaxStudents: 2}
	offered := model.UserSkill{UserID: learner.ID, SkillID: piano.ID, YearsOfExperience: 3, EstimatedDuration: 6, IsActive: true, MaxStudents: 1}
	require.NoError(t, db.Create(&taught).Error)
	require.NoError(t, db.Create(&offered).Error)

	ex := model.SkillExchange{
		UserSkillID:    taught.ID,
		LearnerID:      learner.ID,
		OfferedSkillID: offered.ID,
		Status:         status,
	}
	require.NoError(t, db.Create(&ex).Error)
	return &ex
}

func TestUpdateStatusIfCurrent(t *testing.T) {
	db := setupTestDB(t)
	s := New()

	ex := seedExchange(t, db, model.ExchangeStatusPending)

	rows, err := s.UpdateStatusIfCurrent(db, ex.ID, model.ExchangeStatusPending, model.ExchangeStatusInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	reloaded, err := s.GetByID(db, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExchangeStatusInProgress, reloaded.Status)
}

func TestUpdateStatusIfCurrent_StaleRead(t *testing.T) {
	db := setupTestDB(t)
	s := New()

	ex := seedExchange(t, db, model.ExchangeStatusPending)

	// a concurrent writer moved the exchange first
	rows, err := s.UpdateStatusIfCurrent(db, ex.ID, model.ExchangeStatusPending, model.ExchangeStatusCancelled, "withdrawn")
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	// the loser's guarded write must not apply
	rows, err = s.UpdateStatusIfCurrent(db, ex.ID, model.ExchangeStatusPending, model.ExchangeStatusInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	reloaded, err := s.GetByID(db, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExchangeStatusCancelled, reloaded.Status)
	assert.Equal(t, "withdrawn", reloaded.Reason)
}

func TestUpdateStatusIfCurrent_ReasonOnlyOnCancel(t *testing.T) {
	db := setupTestDB(t)
	s := New()

	ex := seedExchange(t, db, model.ExchangeStatusInProgress)

	rows, err := s.UpdateStatusIfCurrent(db, ex.ID, model.ExchangeStatusInProgress, model.ExchangeStatusCompleted, "ignored")
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	reloaded, err := s.GetByID(db, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExchangeStatusCompleted, reloaded.Status)
	assert.Empty(t, reloaded.Reason)
}

func TestExistsActive(t *testing.T) {
	db := setupTestDB(t)
	s := New()

	ex := seedExchange(t, db, model.ExchangeStatusPending)

	exists, err := s.ExistsActive(db, ex.LearnerID, ex.UserSkillID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = s.UpdateStatusIfCurrent(db, ex.ID, model.ExchangeStatusPending, model.ExchangeStatusCancelled, "done")
	require.NoError(t, err)

	exists, err = s.ExistsActive(db, ex.LearnerID, ex.UserSkillID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListForTeacher_ExcludesTerminal(t *testing.T) {
	db := setupTestDB(t)
	s := New()

	ex := seedExchange(t, db, model.ExchangeStatusPending)
	teacherID := func() uint {
		var us model.UserSkill
		require.NoError(t, db.First(&us, ex.UserSkillID).Error)
		return us.UserID
	}()

	list, total, err := s.ListForTeacher(db, teacherID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	_, err = s.UpdateStatusIfCurrent(db, ex.ID, model.ExchangeStatusPending, model.ExchangeStatusCancelled, "busy")
	require.NoError(t, err)

	_, total, err = s.ListForTeacher(db, teacherID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	// the learner still sees the cancelled exchange in their history
	_, total, err = s.ListForLearner(db, ex.LearnerID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
