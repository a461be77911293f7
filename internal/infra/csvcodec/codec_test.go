package csvcodec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/runoshun/taskboard/internal/tracker"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func at(offset int) time.Time {
	return t0.Add(time.Duration(offset) * time.Minute)
}

func mins(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func historyIDs(m *tracker.Manager) []int {
	items := m.History()
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ItemID()
	}
	return ids
}

func sampleStore(t *testing.T) *tracker.Manager {
	t.Helper()
	m := tracker.New()

	task := domain.NewTask(m.NextID(), "Write report", "quarterly").Schedule(at(120), mins(45))
	task.Status = domain.StatusInProgress
	_, err := m.AddTask(task)
	require.NoError(t, err)

	epic := domain.NewEpic(m.NextID(), "Release", "v2")
	_, err = m.AddEpic(epic)
	require.NoError(t, err)

	first := domain.NewSubTask(m.NextID(), epic.ID, "Build", "").Schedule(at(0), mins(10))
	first.Status = domain.StatusDone
	_, err = m.AddSubTask(first)
	require.NoError(t, err)
	_, err = m.AddSubTask(domain.NewSubTask(m.NextID(), epic.ID, "Ship", "").Schedule(at(10), mins(15)))
	require.NoError(t, err)

	_, err = m.AddEpic(domain.NewEpic(m.NextID(), "Someday", ""))
	require.NoError(t, err)
	_, err = m.AddTask(domain.NewTask(m.NextID(), "Unscheduled", ""))
	require.NoError(t, err)

	m.GetTask(1)
	m.GetEpic(2)
	m.GetSubTask(4)
	m.GetTask(1)
	return m
}

func TestEncode(t *testing.T) {
	m := sampleStore(t)
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, m))

	want := strings.Join([]string{
		Header,
		"1,NORM,Write report,IN_PROGRESS,quarterly,2024-03-01T11:00,PT45M",
		"6,NORM,Unscheduled,NEW,,1970-01-01T00:00,PT0S",
		"3,SUBT,Build,DONE,,2024-03-01T09:00,PT10M,2",
		"4,SUBT,Ship,NEW,,2024-03-01T09:10,PT15M,2",
		"2,EPIC,Release,IN_PROGRESS,v2,2024-03-01T09:00,PT25M",
		"5,EPIC,Someday,NEW,,1970-01-01T00:00,PT0S",
		"",
		"2,4,1",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestEncode_RejectsSeparatorInText(t *testing.T) {
	m := tracker.New()
	task := domain.NewTask(1, "a", "")
	_, err := m.AddTask(task)
	require.NoError(t, err)
	task.Name = "a,b"

	err = Encode(&bytes.Buffer{}, m)

	assert.ErrorIs(t, err, domain.ErrSeparator)
}

func TestRoundTrip(t *testing.T) {
	// Setup
	m := sampleStore(t)
	require.True(t, m.DeleteSubTask(3))
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))

	// Execute
	restored, err := Load(&buf, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, m.AllTasks(), restored.AllTasks())
	assert.Equal(t, m.AllSubTasks(), restored.AllSubTasks())
	assert.Equal(t, m.AllEpics(), restored.AllEpics())
	assert.Equal(t, historyIDs(m), historyIDs(restored))
	assert.Equal(t, m.PeekNextID(), restored.PeekNextID())

	epic, _ := restored.Lookup(2)
	assert.Equal(t, at(10), epic.ScheduledStart())
	assert.Equal(t, mins(15), epic.ScheduledDuration())
}

func TestRoundTrip_NonUTCStart(t *testing.T) {
	// Setup
	zone := time.FixedZone("UTC+3", 3*60*60)
	m := tracker.New()
	task := domain.NewTask(m.NextID(), "a", "").Schedule(time.Date(2024, 3, 1, 9, 0, 0, 0, zone), time.Hour)
	_, err := m.AddTask(task)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))

	// Execute
	loaded, err := Load(&buf, nil)

	// Assert
	require.NoError(t, err)
	got, ok := loaded.GetTask(task.ID)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), got.StartTime)
	assert.True(t, got.StartTime.Equal(task.StartTime))
}

func TestDecode_HeaderOnly(t *testing.T) {
	m, err := Load(strings.NewReader(Header+"\n"), nil)

	require.NoError(t, err)
	assert.Empty(t, m.AllTasks())
	assert.Empty(t, m.AllSubTasks())
	assert.Empty(t, m.AllEpics())
	assert.Empty(t, m.History())
	assert.Equal(t, 1, m.NextID())
}

func TestDecode_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty file", "", domain.ErrEmptyFile},
		{"wrong header", "id,type,name\n1,NORM,a,NEW,,2024-03-01T09:00,PT0S\n", domain.ErrInvalidHeader},
		{"header with trailing space", Header + " \n", domain.ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestDecode_SkipsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"too few fields", "2,NORM,broken"},
		{"bad id", "x,NORM,a,NEW,,2024-03-01T09:00,PT0S"},
		{"bad type", "2,STORY,a,NEW,,2024-03-01T09:00,PT0S"},
		{"bad status", "2,NORM,a,LATER,,2024-03-01T09:00,PT0S"},
		{"bad start", "2,NORM,a,NEW,,yesterday,PT0S"},
		{"bad duration", "2,NORM,a,NEW,,2024-03-01T09:00,10m"},
		{"subtask without epic", "2,SUBT,a,NEW,,2024-03-01T09:00,PT0S"},
		{"task with extra field", "2,NORM,a,NEW,,2024-03-01T09:00,PT0S,1"},
		{"bad epic id", "2,SUBT,a,NEW,,2024-03-01T09:00,PT0S,x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			input := strings.Join([]string{
				Header,
				tt.row,
				"1,NORM,valid,DONE,,2024-03-01T09:00,PT30M",
				"",
				"1",
			}, "\n")
			logger := testutil.NewMockLogger()

			// Execute
			m, err := Load(strings.NewReader(input), logger)

			// Assert
			require.NoError(t, err)
			_, ok := m.Lookup(2)
			assert.False(t, ok)
			require.Len(t, m.AllTasks(), 1)
			assert.Equal(t, "valid", m.AllTasks()[0].Name)
			assert.Equal(t, domain.StatusDone, m.AllTasks()[0].Status)

			warns := logger.ByLevel("WARN")
			require.Len(t, warns, 1)
			assert.Equal(t, "load", warns[0].Category)
			assert.Contains(t, warns[0].Msg, "line 2")
		})
	}
}

func TestDecode_MaxIDRestoresAllocator(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"1,NORM,a,NEW,,2024-03-01T09:00,PT10M",
		"4,SUBT,c,NEW,,2024-03-01T09:10,PT5M,3",
		"2,NORM,b,NEW,,1970-01-01T00:00,PT0S",
		"3,EPIC,e,NEW,,2024-03-01T09:10,PT5M",
		"",
		"9,1",
	}, "\n")

	m, err := Load(strings.NewReader(input), nil)

	require.NoError(t, err)
	assert.Equal(t, 5, m.NextID())
}

func TestDecode_History(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"1,NORM,a,NEW,,2024-03-01T09:00,PT10M",
		"2,NORM,b,NEW,,2024-03-01T09:10,PT10M",
		"3,NORM,c,NEW,,2024-03-01T09:20,PT10M",
		"",
		"2, x,3,1,,42",
	}, "\n")
	logger := testutil.NewMockLogger()

	m, err := Load(strings.NewReader(input), logger)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, historyIDs(m))
	assert.True(t, logger.Contains(`invalid history id "x"`))
	assert.True(t, logger.Contains("history entry skipped"))
}

func TestDecode_CRLF(t *testing.T) {
	input := Header + "\r\n1,NORM,a,NEW,,2024-03-01T09:00,PT10M\r\n\r\n1\r\n"

	m, err := Load(strings.NewReader(input), nil)

	require.NoError(t, err)
	require.Len(t, m.AllTasks(), 1)
	assert.Equal(t, []int{1}, historyIDs(m))
}

func TestDecode_DuplicateIDKeepsFirst(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"1,NORM,first,NEW,,2024-03-01T09:00,PT10M",
		"1,EPIC,second,NEW,,1970-01-01T00:00,PT0S",
	}, "\n")
	logger := testutil.NewMockLogger()

	m, err := Load(strings.NewReader(input), logger)

	require.NoError(t, err)
	item, ok := m.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "first", item.Title())
	assert.Empty(t, m.AllEpics())
	assert.True(t, logger.Contains("duplicate id 1"))
}

func TestDecode_EpicStatusIsRederived(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"2,SUBT,s,NEW,,2024-03-01T09:00,PT10M,1",
		"1,EPIC,e,DONE,,2024-03-01T09:00,PT10M",
	}, "\n")

	m, err := Load(strings.NewReader(input), nil)

	require.NoError(t, err)
	st, ok := m.EpicStatus(1)
	require.True(t, ok)
	assert.Equal(t, domain.StatusNew, st)
}
