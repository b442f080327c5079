package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
)

func (f *fixture) addMilestone(t *testing.T, position int) uint {
	t.Helper()
	m, err := f.ctrl.AddMilestone(context.Background(), f.guitarLessons.ID, f.teacher.ID, MilestoneInput{
		Title:          "Open chords",
		Description:    "C, G, D and Em shapes",
		Position:       position,
		EstimatedHours: 4,
	})
	require.NoError(t, err)
	return m.ID
}

func TestAddMilestone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.ctrl.AddMilestone(ctx, f.guitarLessons.ID, f.teacher.ID, MilestoneInput{
		Title:          "Open chords",
		Position:       1,
		EstimatedHours: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, f.guitarLessons.ID, created.UserSkillID)
	assert.Equal(t, 1, created.Position)

	t.Run("duplicate order", func(t *testing.T) {
		_, err := f.ctrl.AddMilestone(ctx, f.guitarLessons.ID, f.teacher.ID, MilestoneInput{
			Title:          "Barre chords",
			Position:       1,
			EstimatedHours: 6,
		})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("owner only", func(t *testing.T) {
		_, err := f.ctrl.AddMilestone(ctx, f.guitarLessons.ID, f.learner.ID, MilestoneInput{
			Title:          "Strumming",
			Position:       2,
			EstimatedHours: 2,
		})
		require.Error(t, err)
		assert.True(t, errs.IsAuthorization(err))
	})

	t.Run("unknown teaching skill", func(t *testing.T) {
		_, err := f.ctrl.AddMilestone(ctx, 9999, f.teacher.ID, MilestoneInput{
			Title:          "Strumming",
			Position:       2,
			EstimatedHours: 2,
		})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("milestones ride along on the teaching skill", func(t *testing.T) {
		userSkill, err := f.ctrl.GetUserSkill(ctx, f.guitarLessons.ID)
		require.NoError(t, err)
		require.Len(t, userSkill.Milestones, 1)
		assert.Equal(t, "Open chords", userSkill.Milestones[0].Title)
	})
}

func TestUpdateMilestone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.addMilestone(t, 1)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		title := "Open chords revisited"
		updated, err := f.ctrl.UpdateMilestone(ctx, f.guitarLessons.ID, id, f.teacher.ID,
			UpdateMilestoneInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Open chords revisited", updated.Title)
		assert.Equal(t, 1, updated.Position)
		assert.Equal(t, 4, updated.EstimatedHours)
	})

	t.Run("order conflict", func(t *testing.T) {
		otherID := f.addMilestone(t, 2)

		conflicting := 1
		_, err := f.ctrl.UpdateMilestone(ctx, f.guitarLessons.ID, otherID, f.teacher.ID,
			UpdateMilestoneInput{Position: &conflicting})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))

		free := 3
		moved, err := f.ctrl.UpdateMilestone(ctx, f.guitarLessons.ID, otherID, f.teacher.ID,
			UpdateMilestoneInput{Position: &free})
		require.NoError(t, err)
		assert.Equal(t, 3, moved.Position)
	})

	t.Run("owner only", func(t *testing.T) {
		hours := 8
		_, err := f.ctrl.UpdateMilestone(ctx, f.guitarLessons.ID, id, f.learner.ID,
			UpdateMilestoneInput{EstimatedHours: &hours})
		require.Error(t, err)
		assert.True(t, errs.IsAuthorization(err))
	})

	t.Run("milestone from another offer", func(t *testing.T) {
		pianoMilestone, err := f.ctrl.AddMilestone(ctx, f.pianoLessons.ID, f.learner.ID, MilestoneInput{
			Title:          "Scales",
			Position:       1,
			EstimatedHours: 3,
		})
		require.NoError(t, err)

		title := "hijack"
		_, err = f.ctrl.UpdateMilestone(ctx, f.guitarLessons.ID, pianoMilestone.ID, f.teacher.ID,
			UpdateMilestoneInput{Title: &title})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestDeleteMilestone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.addMilestone(t, 1)

	t.Run("owner only", func(t *testing.T) {
		err := f.ctrl.DeleteMilestone(ctx, f.guitarLessons.ID, id, f.learner.ID)
		require.Error(t, err)
		assert.True(t, errs.IsAuthorization(err))
	})

	require.NoError(t, f.ctrl.DeleteMilestone(ctx, f.guitarLessons.ID, id, f.teacher.ID))

	err := f.ctrl.DeleteMilestone(ctx, f.guitarLessons.ID, id, f.teacher.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	t.Run("freed order is reusable", func(t *testing.T) {
		f.addMilestone(t, 1)
	})
}
