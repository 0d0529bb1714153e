package service

import (
	"testing"
	"time"

	"timeweave/core/errors"
	"timeweave/modules/meeting/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeatmap_GridShape(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.WorkHoursEnd = "11:00"
	})

	slots := []entity.SuggestedSlot{
		aggregate(utc(2024, time.January, 1, 9, 0), 4, 5),
		aggregate(utc(2024, time.January, 1, 9, 30), 2, 5),
		aggregate(utc(2024, time.January, 1, 10, 0), 0, 5),
	}

	grid, appErr := engine.BuildHeatmap(m, slots, "")
	require.Nil(t, appErr)

	assert.Equal(t, "UTC", grid.Timezone)
	assert.Equal(t, []string{"2024-01-01"}, grid.Dates)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, grid.TimeSlots)

	cell := grid.Heatmap["2024-01-01"]["09:00"]
	assert.Equal(t, 5, cell.Level)
	assert.Equal(t, 4, cell.Available)
	assert.Equal(t, 5, cell.Total)
	assert.Equal(t, 80.0, cell.Percentage)
	assert.Equal(t, "2024-01-01T09:00:00Z", cell.StartUTC)
	assert.Equal(t, "2024-01-01T10:00:00Z", cell.EndUTC)

	assert.Equal(t, 3, grid.Heatmap["2024-01-01"]["09:30"].Level)
	assert.Equal(t, 40.0, grid.Heatmap["2024-01-01"]["09:30"].Percentage)
	assert.Equal(t, 0, grid.Heatmap["2024-01-01"]["10:00"].Level)
}

func TestBuildHeatmap_TimezoneProjection(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting()
	slots := []entity.SuggestedSlot{
		aggregate(utc(2024, time.January, 2, 0, 30), 3, 4),
	}

	// UTC midnight-ish lands on the morning of the same date in Việt Nam.
	grid, appErr := engine.BuildHeatmap(m, slots, "Asia/Ho_Chi_Minh")
	require.Nil(t, appErr)
	assert.Equal(t, []string{"2024-01-02"}, grid.Dates)
	assert.Equal(t, []string{"07:30"}, grid.TimeSlots)
	assert.Equal(t, 4, grid.Heatmap["2024-01-02"]["07:30"].Level)

	// The same instant is still the previous evening in New York.
	grid, appErr = engine.BuildHeatmap(m, slots, "America/New_York")
	require.Nil(t, appErr)
	assert.Equal(t, []string{"2024-01-01"}, grid.Dates)
	assert.Equal(t, []string{"19:30"}, grid.TimeSlots)
	// The stored instant never changes, only its projection.
	assert.Equal(t, "2024-01-02T00:30:00Z", grid.Heatmap["2024-01-01"]["19:30"].StartUTC)
}

func TestBuildHeatmap_EmptySnapshotProjectsLattice(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.WorkHoursEnd = "10:00"
	})

	grid, appErr := engine.BuildHeatmap(m, nil, "")
	require.Nil(t, appErr)

	require.Equal(t, []string{"2024-01-01"}, grid.Dates)
	require.Equal(t, []string{"09:00"}, grid.TimeSlots)

	cell := grid.Heatmap["2024-01-01"]["09:00"]
	assert.Zero(t, cell.Level)
	assert.Zero(t, cell.Available)
	assert.Zero(t, cell.Total)
	assert.Zero(t, cell.Percentage)
	assert.Equal(t, "2024-01-01T09:00:00Z", cell.StartUTC)
}

func TestBuildHeatmap_MultiDayDatesSorted(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.DateRangeEnd = day(2024, time.January, 3)
	})

	slots := []entity.SuggestedSlot{
		aggregate(utc(2024, time.January, 3, 9, 0), 1, 2),
		aggregate(utc(2024, time.January, 1, 9, 0), 2, 2),
		aggregate(utc(2024, time.January, 2, 14, 0), 1, 2),
	}

	grid, appErr := engine.BuildHeatmap(m, slots, "")
	require.Nil(t, appErr)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, grid.Dates)
	assert.Equal(t, []string{"09:00", "14:00"}, grid.TimeSlots)
}

func TestBuildHeatmap_UnknownTimezone(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting()

	grid, appErr := engine.BuildHeatmap(m, nil, "Mars/Olympus")
	assert.Nil(t, grid)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
