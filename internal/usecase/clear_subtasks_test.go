package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

func TestClearSubTasks_Execute(t *testing.T) {
	// Setup
	store := seedStore(t)
	uc := usecase.NewClearSubTasks(store, nil)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.ClearSubTasksInput{EpicID: 2})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Removed)
	assert.Empty(t, store.SubTasksOf(2))
	assert.Empty(t, store.AllSubTasks())
	epic, ok := store.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, domain.UnscheduledStart, epic.ScheduledStart())
	assert.Zero(t, epic.ScheduledDuration())
}

func TestClearSubTasks_Execute_NotEpic(t *testing.T) {
	store := seedStore(t)
	uc := usecase.NewClearSubTasks(store, nil)

	_, err := uc.Execute(context.Background(), usecase.ClearSubTasksInput{EpicID: 1})

	assert.ErrorIs(t, err, domain.ErrEpicNotFound)
}
