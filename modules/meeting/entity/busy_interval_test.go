package entity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusyInterval_ConflictsWith(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2024, time.January, 1, hour, min, 0, 0, time.UTC)
	}
	slot := TimeSlot{Start: at(9, 0), End: at(10, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"well before", at(7, 0), at(8, 0), false},
		{"well after", at(11, 0), at(12, 0), false},
		{"touching the start", at(8, 0), at(9, 0), false},
		{"touching the end", at(10, 0), at(11, 0), false},
		{"identical window", at(9, 0), at(10, 0), true},
		{"one minute into the slot", at(8, 0), at(9, 1), true},
		{"one minute before the end", at(9, 59), at(11, 0), true},
		{"inside the slot", at(9, 15), at(9, 45), true},
		{"covering the slot", at(8, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &BusyInterval{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.want, b.ConflictsWith(slot))
		})
	}
}

// Cross-checks the predicate against the overlap duration on a few hundred
// seeded random pairs: two half-open intervals conflict exactly when the
// width of their intersection is positive.
func TestBusyInterval_ConflictsWithRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	randomInterval := func() (time.Time, time.Time) {
		start := base.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		end := start.Add(time.Duration(1+rng.Intn(300)) * time.Minute)
		return start, end
	}

	for i := 0; i < 500; i++ {
		busyStart, busyEnd := randomInterval()
		slotStart, slotEnd := randomInterval()

		overlapStart := busyStart
		if slotStart.After(overlapStart) {
			overlapStart = slotStart
		}
		overlapEnd := busyEnd
		if slotEnd.Before(overlapEnd) {
			overlapEnd = slotEnd
		}
		want := overlapEnd.After(overlapStart)

		b := &BusyInterval{StartTime: busyStart, EndTime: busyEnd}
		got := b.ConflictsWith(TimeSlot{Start: slotStart, End: slotEnd})
		require.Equal(t, want, got,
			"busy [%s, %s) vs slot [%s, %s)",
			busyStart.Format("15:04"), busyEnd.Format("15:04"),
			slotStart.Format("15:04"), slotEnd.Format("15:04"))
	}
}
