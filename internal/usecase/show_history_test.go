package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/usecase"
)

func TestShowHistory_Execute(t *testing.T) {
	// Setup
	store := seedStore(t)
	show := usecase.NewShowItem(store)
	for _, id := range []int{1, 3, 2, 1} {
		_, err := show.Execute(context.Background(), usecase.ShowItemInput{ID: id})
		require.NoError(t, err)
	}
	uc := usecase.NewShowHistory(store)

	// Execute
	all, err := uc.Execute(context.Background(), usecase.ShowHistoryInput{})
	require.NoError(t, err)
	limited, err := uc.Execute(context.Background(), usecase.ShowHistoryInput{Limit: 2})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, []int{1, 2, 3}, viewIDs(all.Items))
	assert.Equal(t, []int{1, 2}, viewIDs(limited.Items))
}

func TestShowHistory_Execute_Empty(t *testing.T) {
	uc := usecase.NewShowHistory(newMemStore())

	out, err := uc.Execute(context.Background(), usecase.ShowHistoryInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
