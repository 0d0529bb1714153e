package service

import (
	"sort"
	"time"

	"timeweave/core/logger"
	"timeweave/modules/meeting/entity"

	"github.com/google/uuid"
)

// SlotEngine implements the availability computation: candidate slot
// generation, per-participant overlap testing, and per-slot aggregation.
// All methods are pure with respect to storage.
type SlotEngine struct{}

// NewSlotEngine creates a new slot engine
func NewSlotEngine() *SlotEngine {
	return &SlotEngine{}
}

// GenerateLattice produces every candidate (start, end) window for the
// meeting configuration, in start order, converted to UTC. For each day in
// the inclusive date range (weekends skipped when work_days_only) a window
// of length duration slides from work_hours_start by step_size while
// slot_start + duration <= work_hours_end. Wall-clock times are anchored
// per day, so the local offset (including DST changes) is resolved at
// generation time. Any invalid configuration yields an empty lattice.
func (e *SlotEngine) GenerateLattice(m *entity.Meeting) []entity.TimeSlot {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		logger.Warn("SlotEngine:GenerateLattice", "timezone", m.Timezone, "error", err)
		return nil
	}

	startHour, startMin, ok := parseClock(m.WorkHoursStart)
	if !ok {
		return nil
	}
	endHour, endMin, ok := parseClock(m.WorkHoursEnd)
	if !ok {
		return nil
	}

	if m.DurationMinutes <= 0 || m.StepSizeMinutes <= 0 {
		return nil
	}
	if endHour*60+endMin <= startHour*60+startMin {
		return nil
	}
	if m.DateRangeEnd.Before(m.DateRangeStart) {
		return nil
	}

	duration := time.Duration(m.DurationMinutes) * time.Minute
	step := time.Duration(m.StepSizeMinutes) * time.Minute

	var slots []entity.TimeSlot
	for date := m.DateRangeStart; !date.After(m.DateRangeEnd); date = date.AddDate(0, 0, 1) {
		if m.WorkDaysOnly {
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
		}

		year, month, day := date.Date()
		workStart := time.Date(year, month, day, startHour, startMin, 0, 0, loc)
		workEnd := time.Date(year, month, day, endHour, endMin, 0, 0, loc)

		for cur := workStart; !cur.Add(duration).After(workEnd); cur = cur.Add(step) {
			slots = append(slots, entity.TimeSlot{
				Start: cur.UTC(),
				End:   cur.Add(duration).UTC(),
			})
		}
	}

	return slots
}

// IsParticipantAvailable tests the candidate slot against every busy
// interval. A conflict requires busy.start < slot.end AND busy.end >
// slot.start, so intervals that merely touch a boundary leave the
// participant free.
func (e *SlotEngine) IsParticipantAvailable(slot entity.TimeSlot, busy []entity.BusyInterval) bool {
	for i := range busy {
		if busy[i].ConflictsWith(slot) {
			return false
		}
	}
	return true
}

// AggregateSlot counts how many responded participants are free during one
// candidate slot. Participants who have not responded are excluded from
// both counts; with no responders the result is (0, 0, nil).
func (e *SlotEngine) AggregateSlot(
	slot entity.TimeSlot,
	participants []entity.Participant,
	busyByParticipant map[uuid.UUID][]entity.BusyInterval,
) (available int, total int, availableIDs []uuid.UUID) {
	for i := range participants {
		p := &participants[i]
		if !p.HasResponded {
			continue
		}
		total++
		if e.IsParticipantAvailable(slot, busyByParticipant[p.ID]) {
			available++
			availableIDs = append(availableIDs, p.ID)
		}
	}
	return available, total, availableIDs
}

// BuildSnapshot runs a full aggregation pass: the candidate lattice is
// generated from the meeting configuration and every slot is scored against
// the responded participants' busy intervals. The result replaces any
// previously stored aggregates.
func (e *SlotEngine) BuildSnapshot(
	m *entity.Meeting,
	participants []entity.Participant,
	busyByParticipant map[uuid.UUID][]entity.BusyInterval,
) []entity.SuggestedSlot {
	lattice := e.GenerateLattice(m)
	if len(lattice) == 0 {
		return nil
	}

	now := time.Now().UTC()
	slots := make([]entity.SuggestedSlot, 0, len(lattice))
	for _, candidate := range lattice {
		availableCount, totalCount, _ := e.AggregateSlot(candidate, participants, busyByParticipant)
		slots = append(slots, entity.SuggestedSlot{
			ID:                uuid.New(),
			MeetingID:         m.ID,
			StartTime:         candidate.Start,
			EndTime:           candidate.End,
			AvailableCount:    availableCount,
			TotalParticipants: totalCount,
			CalculatedAt:      now,
		})
	}

	return slots
}

// MergeTimeSlots collapses overlapping or adjacent windows into the minimal
// covering set, sorted by start. Used when importing external calendar
// busy periods.
func MergeTimeSlots(slots []entity.TimeSlot) []entity.TimeSlot {
	if len(slots) == 0 {
		return slots
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	merged := []entity.TimeSlot{slots[0]}
	for i := 1; i < len(slots); i++ {
		last := &merged[len(merged)-1]
		current := slots[i]

		if current.Start.Before(last.End) || current.Start.Equal(last.End) {
			if current.End.After(last.End) {
				last.End = current.End
			}
		} else {
			merged = append(merged, current)
		}
	}

	return merged
}

// parseClock reads a wall-clock label. Accepts both HH:MM and the HH:MM:SS
// form Postgres TIME columns scan back as.
func parseClock(s string) (hour, minute int, ok bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}
