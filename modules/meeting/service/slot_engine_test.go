package service

import (
	"testing"
	"time"

	"timeweave/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func utc(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

// latticeMeeting returns a one-day UTC meeting that generators and
// aggregation tests tweak per case.
func latticeMeeting(mutate ...func(*entity.Meeting)) *entity.Meeting {
	m := &entity.Meeting{
		ID:              uuid.New(),
		Title:           "Họp dự án",
		Status:          entity.MeetingStatusActive,
		DurationMinutes: 60,
		Timezone:        "UTC",
		DateRangeStart:  day(2024, time.January, 1), // Monday
		DateRangeEnd:    day(2024, time.January, 1),
		WorkHoursStart:  "09:00",
		WorkHoursEnd:    "17:00",
		StepSizeMinutes: 30,
		WorkDaysOnly:    true,
	}
	for _, fn := range mutate {
		fn(m)
	}
	return m
}

func TestGenerateLattice_SingleDay(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.WorkHoursEnd = "11:00"
	})

	slots := engine.GenerateLattice(m)

	require.Len(t, slots, 3)
	assert.Equal(t, utc(2024, time.January, 1, 9, 0), slots[0].Start)
	assert.Equal(t, utc(2024, time.January, 1, 10, 0), slots[0].End)
	assert.Equal(t, utc(2024, time.January, 1, 9, 30), slots[1].Start)
	// Last slot ends exactly at the work-hours boundary.
	assert.Equal(t, utc(2024, time.January, 1, 10, 0), slots[2].Start)
	assert.Equal(t, utc(2024, time.January, 1, 11, 0), slots[2].End)
}

func TestGenerateLattice_SlotsPerDay(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		step     int
		start    string
		end      string
		want     int
	}{
		{"full work day", 60, 30, "09:00", "17:00", 15},
		{"quarter-hour step", 60, 15, "09:00", "12:00", 9},
		{"long blocks", 120, 60, "09:00", "17:00", 7},
		{"duration fills the window", 480, 30, "09:00", "17:00", 1},
		{"duration exceeds the window", 90, 30, "09:00", "10:00", 0},
	}

	engine := NewSlotEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := latticeMeeting(func(m *entity.Meeting) {
				m.DurationMinutes = tt.duration
				m.StepSizeMinutes = tt.step
				m.WorkHoursStart = tt.start
				m.WorkHoursEnd = tt.end
			})
			assert.Len(t, engine.GenerateLattice(m), tt.want)
		})
	}
}

func TestGenerateLattice_WorkDaysOnly(t *testing.T) {
	engine := NewSlotEngine()
	// 2024-01-01 is a Monday, so the week runs Mon..Sun.
	m := latticeMeeting(func(m *entity.Meeting) {
		m.DateRangeEnd = day(2024, time.January, 7)
		m.WorkHoursEnd = "10:00" // one slot per day
	})

	slots := engine.GenerateLattice(m)
	require.Len(t, slots, 5)
	for i, slot := range slots {
		assert.Equal(t, utc(2024, time.January, 1+i, 9, 0), slot.Start)
	}

	m.WorkDaysOnly = false
	assert.Len(t, engine.GenerateLattice(m), 7)
}

func TestGenerateLattice_TimezoneAnchoring(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.Timezone = "America/New_York"
		m.WorkHoursEnd = "10:00"
	})

	slots := engine.GenerateLattice(m)
	require.Len(t, slots, 1)
	// 09:00 EST is UTC-5.
	assert.Equal(t, utc(2024, time.January, 1, 14, 0), slots[0].Start)
	assert.Equal(t, time.UTC, slots[0].Start.Location())
}

func TestGenerateLattice_DSTTransition(t *testing.T) {
	engine := NewSlotEngine()
	// US DST began on Sunday 2024-03-10; Friday is still EST, Monday is EDT.
	m := latticeMeeting(func(m *entity.Meeting) {
		m.Timezone = "America/New_York"
		m.DateRangeStart = day(2024, time.March, 8)
		m.DateRangeEnd = day(2024, time.March, 11)
		m.WorkHoursEnd = "10:00"
	})

	slots := engine.GenerateLattice(m)
	require.Len(t, slots, 2)
	assert.Equal(t, utc(2024, time.March, 8, 14, 0), slots[0].Start)
	assert.Equal(t, utc(2024, time.March, 11, 13, 0), slots[1].Start)
}

func TestGenerateLattice_InvalidConfig(t *testing.T) {
	engine := NewSlotEngine()

	tests := []struct {
		name   string
		mutate func(*entity.Meeting)
	}{
		{"unknown timezone", func(m *entity.Meeting) { m.Timezone = "Mars/Olympus" }},
		{"bad clock", func(m *entity.Meeting) { m.WorkHoursStart = "morning" }},
		{"zero duration", func(m *entity.Meeting) { m.DurationMinutes = 0 }},
		{"zero step", func(m *entity.Meeting) { m.StepSizeMinutes = 0 }},
		{"window inverted", func(m *entity.Meeting) { m.WorkHoursStart = "18:00"; m.WorkHoursEnd = "09:00" }},
		{"date range inverted", func(m *entity.Meeting) { m.DateRangeEnd = day(2023, time.December, 31) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, engine.GenerateLattice(latticeMeeting(tt.mutate)))
		})
	}
}

func TestIsParticipantAvailable(t *testing.T) {
	engine := NewSlotEngine()
	slot := entity.TimeSlot{
		Start: utc(2024, time.January, 1, 9, 0),
		End:   utc(2024, time.January, 1, 10, 0),
	}

	busyRange := func(startHour, startMin, endHour, endMin int) entity.BusyInterval {
		return entity.BusyInterval{
			StartTime: utc(2024, time.January, 1, startHour, startMin),
			EndTime:   utc(2024, time.January, 1, endHour, endMin),
		}
	}

	tests := []struct {
		name string
		busy []entity.BusyInterval
		want bool
	}{
		{"no intervals", nil, true},
		{"ends when the slot starts", []entity.BusyInterval{busyRange(8, 0, 9, 0)}, true},
		{"starts when the slot ends", []entity.BusyInterval{busyRange(10, 0, 11, 0)}, true},
		{"exact overlap", []entity.BusyInterval{busyRange(9, 0, 10, 0)}, false},
		{"overlaps the start", []entity.BusyInterval{busyRange(8, 30, 9, 30)}, false},
		{"overlaps the end", []entity.BusyInterval{busyRange(9, 30, 10, 30)}, false},
		{"contained in the slot", []entity.BusyInterval{busyRange(9, 15, 9, 45)}, false},
		{"covers the slot", []entity.BusyInterval{busyRange(8, 0, 11, 0)}, false},
		{"one of many conflicts", []entity.BusyInterval{busyRange(7, 0, 8, 0), busyRange(9, 30, 9, 45)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.IsParticipantAvailable(slot, tt.busy))
		})
	}
}

func TestAggregateSlot_CountsResponders(t *testing.T) {
	engine := NewSlotEngine()
	slot := entity.TimeSlot{
		Start: utc(2024, time.January, 1, 9, 0),
		End:   utc(2024, time.January, 1, 10, 0),
	}

	participants := make([]entity.Participant, 10)
	busy := make(map[uuid.UUID][]entity.BusyInterval)
	for i := range participants {
		participants[i] = entity.Participant{ID: uuid.New(), HasResponded: true}
	}
	for i := 0; i < 3; i++ {
		busy[participants[i].ID] = []entity.BusyInterval{{StartTime: slot.Start, EndTime: slot.End}}
	}

	available, total, ids := engine.AggregateSlot(slot, participants, busy)
	assert.Equal(t, 7, available)
	assert.Equal(t, 10, total)
	require.Len(t, ids, 7)
	for _, id := range ids {
		assert.NotContains(t, []uuid.UUID{participants[0].ID, participants[1].ID, participants[2].ID}, id)
	}
}

func TestAggregateSlot_SkipsNonResponders(t *testing.T) {
	engine := NewSlotEngine()
	slot := entity.TimeSlot{
		Start: utc(2024, time.January, 1, 9, 0),
		End:   utc(2024, time.January, 1, 10, 0),
	}

	participants := make([]entity.Participant, 10)
	busy := make(map[uuid.UUID][]entity.BusyInterval)
	for i := range participants {
		participants[i] = entity.Participant{ID: uuid.New(), HasResponded: i < 8}
	}
	for i := 0; i < 2; i++ {
		busy[participants[i].ID] = []entity.BusyInterval{{StartTime: slot.Start, EndTime: slot.End}}
	}
	// Busy intervals of a non-responder must not count either way.
	busy[participants[9].ID] = []entity.BusyInterval{{StartTime: slot.Start, EndTime: slot.End}}

	available, total, _ := engine.AggregateSlot(slot, participants, busy)
	assert.Equal(t, 6, available)
	assert.Equal(t, 8, total)
}

func TestAggregateSlot_NoResponders(t *testing.T) {
	engine := NewSlotEngine()
	slot := entity.TimeSlot{
		Start: utc(2024, time.January, 1, 9, 0),
		End:   utc(2024, time.January, 1, 10, 0),
	}
	participants := []entity.Participant{
		{ID: uuid.New(), HasResponded: false},
		{ID: uuid.New(), HasResponded: false},
	}

	available, total, ids := engine.AggregateSlot(slot, participants, nil)
	assert.Zero(t, available)
	assert.Zero(t, total)
	assert.Nil(t, ids)
}

func TestBuildSnapshot(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.WorkHoursEnd = "11:00"
	})

	p1 := entity.Participant{ID: uuid.New(), HasResponded: true}
	p2 := entity.Participant{ID: uuid.New(), HasResponded: true}
	busy := map[uuid.UUID][]entity.BusyInterval{
		p1.ID: {{StartTime: utc(2024, time.January, 1, 9, 0), EndTime: utc(2024, time.January, 1, 10, 0)}},
	}

	slots := engine.BuildSnapshot(m, []entity.Participant{p1, p2}, busy)

	require.Len(t, slots, 3)
	// 09:00 and 09:30 collide with p1's interval; 10:00 starts right as it ends.
	assert.Equal(t, 1, slots[0].AvailableCount)
	assert.Equal(t, 1, slots[1].AvailableCount)
	assert.Equal(t, 2, slots[2].AvailableCount)
	for _, s := range slots {
		assert.Equal(t, m.ID, s.MeetingID)
		assert.Equal(t, 2, s.TotalParticipants)
		assert.NotEqual(t, uuid.Nil, s.ID)
		assert.False(t, s.CalculatedAt.IsZero())
	}
}

func TestBuildSnapshot_EmptyLattice(t *testing.T) {
	engine := NewSlotEngine()
	m := latticeMeeting(func(m *entity.Meeting) {
		m.Timezone = "Mars/Olympus"
	})

	assert.Nil(t, engine.BuildSnapshot(m, nil, nil))
}

func TestMergeTimeSlots(t *testing.T) {
	at := func(hour, min int) time.Time { return utc(2024, time.January, 1, hour, min) }

	tests := []struct {
		name  string
		input []entity.TimeSlot
		want  []entity.TimeSlot
	}{
		{"empty", nil, nil},
		{
			"overlapping",
			[]entity.TimeSlot{{Start: at(10, 0), End: at(11, 0)}, {Start: at(10, 30), End: at(11, 30)}},
			[]entity.TimeSlot{{Start: at(10, 0), End: at(11, 30)}},
		},
		{
			"adjacent windows join",
			[]entity.TimeSlot{{Start: at(9, 0), End: at(10, 0)}, {Start: at(10, 0), End: at(11, 0)}},
			[]entity.TimeSlot{{Start: at(9, 0), End: at(11, 0)}},
		},
		{
			"disjoint stay apart",
			[]entity.TimeSlot{{Start: at(9, 0), End: at(10, 0)}, {Start: at(11, 0), End: at(12, 0)}},
			[]entity.TimeSlot{{Start: at(9, 0), End: at(10, 0)}, {Start: at(11, 0), End: at(12, 0)}},
		},
		{
			"unsorted input",
			[]entity.TimeSlot{{Start: at(13, 0), End: at(14, 0)}, {Start: at(9, 0), End: at(10, 0)}},
			[]entity.TimeSlot{{Start: at(9, 0), End: at(10, 0)}, {Start: at(13, 0), End: at(14, 0)}},
		},
		{
			"contained window swallowed",
			[]entity.TimeSlot{{Start: at(9, 0), End: at(12, 0)}, {Start: at(10, 0), End: at(11, 0)}},
			[]entity.TimeSlot{{Start: at(9, 0), End: at(12, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeTimeSlots(tt.input))
		})
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, ok := parseClock("09:30")
	require.True(t, ok)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	// Postgres TIME columns scan back with seconds.
	hour, minute, ok = parseClock("18:00:00")
	require.True(t, ok)
	assert.Equal(t, 18, hour)
	assert.Equal(t, 0, minute)

	_, _, ok = parseClock("late")
	assert.False(t, ok)
	_, _, ok = parseClock("25:00")
	assert.False(t, ok)
}
