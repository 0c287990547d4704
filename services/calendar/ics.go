// Package calendar renders booked sessions as an iCalendar (RFC 5545) payload.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"sessionplanner/models"
	"sessionplanner/services/matching"

	ics "github.com/arran4/golang-ical"
)

const (
	productID    = "-//SessionPlanner//Schedule//EN"
	uidDomain    = "sessionplanner"
	defaultPlace = "Online Session"
	defaultHost  = "Conference Organizer"
	alarmLead    = "-PT15M"
)

// Generate renders one VEVENT per session, each with a 15 minute display alarm.
// groupID scopes the event UIDs; stamp becomes DTSTAMP. Text values are escaped
// and long lines folded by the encoder.
func Generate(groupID string, sessions []models.Session, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for _, s := range sessions {
		start, end := matching.SessionWindow(s)
		location := s.Location
		if location == "" {
			location = defaultPlace
		}
		organizer := s.Instructor
		if organizer == "" {
			organizer = defaultHost
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s@%s", groupID, s.ID, uidDomain))
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(plainText(s.Title))
		event.SetDescription(plainText(describe(s)))
		event.SetLocation(plainText(location))
		event.SetOrganizer("noreply@"+uidDomain+".invalid", ics.WithCN(organizer))
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetTimeTransparency(ics.TransparencyOpaque)

		alarm := event.AddAlarm()
		alarm.SetTrigger(alarmLead)
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetProperty(ics.ComponentPropertyDescription, "Session starts in 15 minutes")
	}

	return cal.Serialize(ics.WithNewLineWindows)
}

// plainText normalises line endings; the encoder turns LF into the \n escape.
func plainText(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "")
}

func describe(s models.Session) string {
	var parts []string
	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	if s.Instructor != "" {
		parts = append(parts, "Instructor: "+s.Instructor)
	}
	if len(s.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(s.Tags, ", "))
	}
	if s.Capacity > 0 {
		parts = append(parts, fmt.Sprintf("Capacity: %d/%d enrolled", s.Enrolled, s.Capacity))
	}
	return strings.Join(parts, "\n\n")
}

// Filename is the attachment name offered for a booking's calendar.
func Filename(groupID string) string {
	return fmt.Sprintf("schedule-%s.ics", groupID)
}
