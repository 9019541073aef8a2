// Package calendar renders scheduled sessions as calendar artifacts. Pure
// formatting, no lifecycle state involved.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultSessionDuration is used when an event has no explicit end time.
const DefaultSessionDuration = time.Hour

type Event struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// SessionEvent builds a one-hour event for a scheduled swap session.
func SessionEvent(title, description string, start time.Time) Event {
	return Event{
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     start.Add(DefaultSessionDuration),
	}
}

// formatDate renders a time as a compact UTC timestamp (YYYYMMDDTHHMMSSZ).
func formatDate(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// ICS renders the event as an RFC 5545 VCALENDAR text block.
func ICS(e Event) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		fmt.Sprintf("DTSTART:%s", formatDate(e.StartTime)),
		fmt.Sprintf("DTEND:%s", formatDate(e.EndTime)),
		fmt.Sprintf("SUMMARY:%s", e.Title),
		fmt.Sprintf("DESCRIPTION:%s", e.Description),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n")
}

// GoogleCalendarURL builds a prefilled Google Calendar event URL.
func GoogleCalendarURL(e Event) string {
	u, _ := url.Parse("https://www.google.com/calendar/render")
	q := u.Query()
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", fmt.Sprintf("%s/%s", formatDate(e.StartTime), formatDate(e.EndTime)))
	q.Set("details", e.Description)
	u.RawQuery = q.Encode()
	return u.String()
}
