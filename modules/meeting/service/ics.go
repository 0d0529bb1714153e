package service

import (
	"bytes"
	"fmt"
	"time"

	"timeweave/modules/meeting/entity"

	"github.com/emersion/go-ical"
)

// BuildLockedICS renders the locked slot as a single-event iCalendar file
// participants can import into their own calendars.
func BuildLockedICS(m *entity.Meeting, slot *entity.SuggestedSlot) ([]byte, error) {
	event := ical.NewComponent(ical.CompEvent)
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@timeweave", slot.ID))
	event.Props.SetText(ical.PropSummary, m.Title)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, slot.StartTime.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, slot.EndTime.UTC())
	if m.Description != "" {
		event.Props.SetText(ical.PropDescription, m.Description)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//TimeWeave//Meeting Scheduler//EN")
	cal.Children = append(cal.Children, event)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}
