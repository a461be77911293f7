package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }

func TestNewEpic_Unscheduled(t *testing.T) {
	epic := NewEpic(3, "name 3", "descr 3")

	assert.Equal(t, StatusNotApplicable, epic.Status())
	assert.Equal(t, UnscheduledStart, epic.ScheduledStart())
	assert.Equal(t, time.Duration(0), epic.ScheduledDuration())
	assert.False(t, epic.HasSubTasks())
	assert.Equal(t, "003 EPIC [NoSubs]", epic.String())
}

func TestEpic_SetStatusIsIgnored(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	epic.SetStatus(StatusDone)

	assert.Equal(t, StatusNotApplicable, epic.Status())
}

func TestEpic_ScheduleSettersWithoutSubtasks(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	epic.SetStart(t0)
	epic.SetDuration(minutes(10))

	assert.Equal(t, UnscheduledStart, epic.ScheduledStart())
	assert.Equal(t, time.Duration(0), epic.ScheduledDuration())
}

func TestEpic_ScheduleSettersWithSubtasks(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	require.True(t, epic.Attach(NewSubTask(1, 3, "s", "").Schedule(t0, minutes(10))))

	epic.SetStart(t0.Add(time.Hour))
	epic.SetDuration(minutes(45))

	assert.Equal(t, t0.Add(time.Hour), epic.ScheduledStart())
	assert.Equal(t, minutes(45), epic.ScheduledDuration())
}

func TestEpic_AttachRollUp(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	a := NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10))
	b := NewSubTask(2, 3, "b", "").Schedule(t0.Add(minutes(10)), minutes(15))
	c := NewSubTask(5, 3, "c", "").Schedule(t0.Add(minutes(25)), minutes(5))

	// Attach out of order: the earliest start still wins.
	assert.True(t, epic.Attach(c))
	assert.True(t, epic.Attach(b))
	assert.True(t, epic.Attach(a))

	assert.Equal(t, []int{1, 2, 5}, epic.SubTaskIDs())
	assert.Equal(t, t0, epic.ScheduledStart())
	assert.Equal(t, minutes(30), epic.ScheduledDuration())
	assert.Equal(t, t0.Add(minutes(30)), epic.EndTime())
}

func TestEpic_AttachRejectsForeignAndDuplicate(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	sub := NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10))

	assert.True(t, epic.Attach(sub))
	assert.False(t, epic.Attach(sub), "duplicate id must be ignored")

	dup := NewSubTask(1, 3, "other value, same id", "").Schedule(t0, minutes(99))
	assert.False(t, epic.Attach(dup))

	assert.False(t, epic.Attach(NewSubTask(2, 7, "foreign", "")))
	assert.False(t, epic.Attach(nil))
	assert.Equal(t, minutes(10), epic.ScheduledDuration())
}

func TestEpic_DetachEarliestAdvancesStart(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	a := NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10))
	b := NewSubTask(2, 3, "b", "").Schedule(t0.Add(minutes(10)), minutes(15))
	c := NewSubTask(5, 3, "c", "").Schedule(t0.Add(minutes(25)), minutes(5))
	epic.Attach(a)
	epic.Attach(b)
	epic.Attach(c)

	require.True(t, epic.Detach(a))

	assert.Equal(t, t0.Add(minutes(10)), epic.ScheduledStart())
	assert.Equal(t, minutes(20), epic.ScheduledDuration())
	assert.Equal(t, []int{2, 5}, epic.SubTaskIDs())
}

func TestEpic_DetachEarliestWithGapDoesNotRescan(t *testing.T) {
	// The start advances by the removed duration rather than jumping to the
	// next real subtask start.
	epic := NewEpic(3, "n", "d")
	a := NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10))
	b := NewSubTask(2, 3, "b", "").Schedule(t0.Add(time.Hour), minutes(15))
	epic.Attach(a)
	epic.Attach(b)

	epic.Detach(a)

	assert.Equal(t, t0.Add(minutes(10)), epic.ScheduledStart())
	assert.Equal(t, minutes(15), epic.ScheduledDuration())
}

func TestEpic_DetachLastResets(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	a := NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10))
	epic.Attach(a)

	assert.True(t, epic.Detach(a))
	assert.False(t, epic.Detach(a), "second detach is a no-op")

	assert.Equal(t, UnscheduledStart, epic.ScheduledStart())
	assert.Equal(t, time.Duration(0), epic.ScheduledDuration())
	assert.Empty(t, epic.SubTaskIDs())
}

func TestEpic_DetachLaterKeepsStart(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	a := NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10))
	b := NewSubTask(2, 3, "b", "").Schedule(t0.Add(minutes(10)), minutes(15))
	epic.Attach(a)
	epic.Attach(b)

	epic.Detach(b)

	assert.Equal(t, t0, epic.ScheduledStart())
	assert.Equal(t, minutes(10), epic.ScheduledDuration())
}

func TestEpic_Clear(t *testing.T) {
	epic := NewEpic(3, "n", "d")
	epic.Attach(NewSubTask(1, 3, "a", "").Schedule(t0, minutes(10)))

	epic.Clear()

	assert.False(t, epic.HasSubTasks())
	assert.False(t, epic.HasSubTask(1))
	assert.Equal(t, UnscheduledStart, epic.ScheduledStart())
	assert.Equal(t, time.Duration(0), epic.ScheduledDuration())
}
