package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

func TestDeleteItem_Execute_ByID(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		deleted   int
		remaining []int
	}{
		{"task", 1, 1, []int{2, 3, 4, 5}},
		{"subtask", 4, 1, []int{1, 2, 3, 5}},
		{"epic cascades", 2, 3, []int{1, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seedStore(t)
			uc := usecase.NewDeleteItem(store, nil)

			out, err := uc.Execute(context.Background(), usecase.DeleteItemInput{ID: tt.id})

			require.NoError(t, err)
			assert.Equal(t, tt.deleted, out.Deleted)
			list, err := usecase.NewListItems(store).Execute(context.Background(), usecase.ListItemsInput{})
			require.NoError(t, err)
			assert.Equal(t, tt.remaining, viewIDs(list.Items))
		})
	}
}

func TestDeleteItem_Execute_SubTaskUpdatesEpic(t *testing.T) {
	store := seedStore(t)
	uc := usecase.NewDeleteItem(store, nil)

	_, err := uc.Execute(context.Background(), usecase.DeleteItemInput{ID: 4})
	require.NoError(t, err)

	epic, _ := store.Lookup(2)
	assert.Equal(t, time.Hour, epic.ScheduledDuration())
	assert.Equal(t, t0, epic.ScheduledStart())
}

func TestDeleteItem_Execute_All(t *testing.T) {
	tests := []struct {
		kind      domain.Kind
		deleted   int
		remaining []int
	}{
		{domain.KindTask, 2, []int{2, 3, 4}},
		{domain.KindSubTask, 2, []int{1, 2, 5}},
		{domain.KindEpic, 3, []int{1, 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			store := seedStore(t)
			uc := usecase.NewDeleteItem(store, nil)

			out, err := uc.Execute(context.Background(), usecase.DeleteItemInput{All: tt.kind})

			require.NoError(t, err)
			assert.Equal(t, tt.deleted, out.Deleted)
			list, err := usecase.NewListItems(store).Execute(context.Background(), usecase.ListItemsInput{})
			require.NoError(t, err)
			assert.Equal(t, tt.remaining, viewIDs(list.Items))
		})
	}
}

func TestDeleteItem_Execute_Errors(t *testing.T) {
	store := seedStore(t)
	uc := usecase.NewDeleteItem(store, nil)

	_, err := uc.Execute(context.Background(), usecase.DeleteItemInput{ID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), usecase.DeleteItemInput{All: "STORY"})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}
