package matches

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

const (
	calendarBase   = "https://calendar.google.com/calendar/render"
	compactUTC     = "20060102T150405Z"
	icsProductID   = "-//gaa-match-scheduler//EN"
	icsUIDTemplate = "match-%s@gaa-match-scheduler"
)

func (m Match) title() string { return fmt.Sprintf("%s vs %s", m.HomeTeam, m.AwayTeam) }

// ScoreLines returns the "Team: N points (g goals, p points)" pair, or nil when no score is recorded.
func (m Match) ScoreLines() []string {
	if m.HomeTotal() == 0 && m.AwayTotal() == 0 {
		return nil
	}
	return []string{
		fmt.Sprintf("%s: %d points (%d goals, %d points)", m.HomeTeam, m.HomeTotal(), m.HomeGoals, m.HomePoints),
		fmt.Sprintf("%s: %d points (%d goals, %d points)", m.AwayTeam, m.AwayTotal(), m.AwayGoals, m.AwayPoints),
	}
}

func (m Match) calendarDetails() string {
	var b strings.Builder
	b.WriteString(m.GameType)
	if m.Venue != "" {
		fmt.Fprintf(&b, "\nVenue: %s", m.Venue)
	}
	fmt.Fprintf(&b, "\nHalf Duration: %d minutes", m.PeriodDuration)
	fmt.Fprintf(&b, "\nInterval: %d minutes", m.IntervalDuration)
	if m.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", m.Notes)
	}
	if lines := m.ScoreLines(); lines != nil {
		b.WriteString("\n\nFinal Score:")
		for _, l := range lines {
			b.WriteString("\n" + l)
		}
	}
	return b.String()
}

// CalendarURL builds a Google Calendar "add event" link for m.
func CalendarURL(m Match) (string, error) {
	w, err := m.Window()
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", m.title())
	q.Set("dates", w.Start.UTC().Format(compactUTC)+"/"+w.End.UTC().Format(compactUTC))
	q.Set("details", m.calendarDetails())
	if m.Venue != "" {
		q.Set("location", m.Venue)
	}
	return calendarBase + "?" + q.Encode(), nil
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

// WriteICS writes an iCalendar feed of list. Matches whose date or time
// cannot be parsed are skipped.
func WriteICS(w io.Writer, list []Match, now time.Time) error {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\r\n")
	}
	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")

	stamp := now.UTC().Format(compactUTC)
	for _, m := range list {
		win, err := m.Window()
		if err != nil {
			continue
		}
		line("BEGIN:VEVENT")
		line("UID:"+icsUIDTemplate, m.ID)
		line("DTSTAMP:%s", stamp)
		line("DTSTART:%s", win.Start.UTC().Format(compactUTC))
		line("DTEND:%s", win.End.UTC().Format(compactUTC))
		line("SUMMARY:%s", icsEscaper.Replace(m.title()))
		if m.Venue != "" {
			line("LOCATION:%s", icsEscaper.Replace(m.Venue))
		}
		line("DESCRIPTION:%s", icsEscaper.Replace(m.calendarDetails()))
		line("STATUS:CONFIRMED")
		line("END:VEVENT")
	}
	line("END:VCALENDAR")

	_, err := io.WriteString(w, b.String())
	return err
}
