package service

import (
	"sort"
	"time"

	"timeweave/core/errors"
	"timeweave/modules/meeting/entity"
)

// HeatmapCell carries one (date, time) bucket of the availability grid.
type HeatmapCell struct {
	Level      int     `json:"level"`
	Available  int     `json:"available"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	StartUTC   string  `json:"start_utc"`
	EndUTC     string  `json:"end_utc"`
}

// HeatmapGrid is the dense date x time-of-day availability projection in a
// display timezone. Dates (YYYY-MM-DD) and time labels (HH:MM) are the
// sorted distinct local keys of the grid; instants stay ISO-8601 UTC.
type HeatmapGrid struct {
	Dates     []string                          `json:"dates"`
	TimeSlots []string                          `json:"time_slots"`
	Heatmap   map[string]map[string]HeatmapCell `json:"heatmap"`
	Timezone  string                            `json:"timezone"`
}

// BuildHeatmap projects stored aggregates onto the grid. When no aggregates
// exist yet (draft meetings, or nothing recomputed) the zero-valued
// candidate lattice is projected instead so the grid shape is complete.
// The display timezone defaults to the meeting timezone; each slot's local
// date and label are resolved independently, so DST transitions inside the
// range stay correct.
func (e *SlotEngine) BuildHeatmap(m *entity.Meeting, slots []entity.SuggestedSlot, displayTimezone string) (*HeatmapGrid, *errors.AppError) {
	tzName := displayTimezone
	if tzName == "" {
		tzName = m.Timezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone: "+tzName, err)
	}

	grid := &HeatmapGrid{
		Heatmap:  make(map[string]map[string]HeatmapCell),
		Timezone: tzName,
	}

	if len(slots) == 0 {
		for _, candidate := range e.GenerateLattice(m) {
			grid.add(candidate.Start, loc, HeatmapCell{
				StartUTC: candidate.Start.UTC().Format(time.RFC3339),
				EndUTC:   candidate.End.UTC().Format(time.RFC3339),
			})
		}
	} else {
		for i := range slots {
			s := &slots[i]
			grid.add(s.StartTime, loc, HeatmapCell{
				Level:      s.HeatmapLevel(),
				Available:  s.AvailableCount,
				Total:      s.TotalParticipants,
				Percentage: s.AvailabilityPercentage(),
				StartUTC:   s.StartTime.UTC().Format(time.RFC3339),
				EndUTC:     s.EndTime.UTC().Format(time.RFC3339),
			})
		}
	}

	grid.collectKeys()
	return grid, nil
}

func (g *HeatmapGrid) add(startUTC time.Time, loc *time.Location, cell HeatmapCell) {
	local := startUTC.In(loc)
	dateKey := local.Format("2006-01-02")
	timeKey := local.Format("15:04")

	if _, ok := g.Heatmap[dateKey]; !ok {
		g.Heatmap[dateKey] = make(map[string]HeatmapCell)
	}
	g.Heatmap[dateKey][timeKey] = cell
}

func (g *HeatmapGrid) collectKeys() {
	g.Dates = make([]string, 0, len(g.Heatmap))
	timeSet := make(map[string]struct{})

	for date, times := range g.Heatmap {
		g.Dates = append(g.Dates, date)
		for label := range times {
			timeSet[label] = struct{}{}
		}
	}
	sort.Strings(g.Dates)

	g.TimeSlots = make([]string, 0, len(timeSet))
	for label := range timeSet {
		g.TimeSlots = append(g.TimeSlots, label)
	}
	sort.Strings(g.TimeSlots)
}
