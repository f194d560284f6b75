package report

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	displayDate = "02/01/2006"
	rule        = "=========================================="
)

// Render prints r as the plain-text report. Output depends only on r.
func Render(r Report) string {
	var b strings.Builder
	p := func(format string, args ...any) { fmt.Fprintf(&b, format, args...) }

	p("GAA Referee Report - %d\n", r.Year)
	p("Generated on: %s\n", r.GeneratedAt.Format(displayDate))
	p("Game Types: %s\n", strings.Join(r.Categories, ", "))
	p("Total Matches: %d\n\n", r.Total)

	p("Game Type Breakdown:\n")
	for _, c := range r.Breakdown {
		p("  %s: %d matches\n", c.Category, c.Count)
	}

	p("\nMatch Details:\n")
	p("%s\n\n", rule)
	for _, e := range r.Entries {
		p("Match %d: %s at %s\n", e.Number, e.Date.Format(displayDate), e.Time)
		p("   %s vs %s\n", e.HomeTeam, e.AwayTeam)
		if e.AgeGroup != "" {
			p("   %s - %s\n", e.Category, e.AgeGroup)
		} else {
			p("   %s\n", e.Category)
		}
		if e.Venue != "" {
			p("   Venue: %s\n", e.Venue)
		}
		p("   Duration: 2 × %dmin + %dmin interval (Total: %dmin)\n", e.PeriodDuration, e.IntervalDuration, e.TotalMinutes)
		if e.Competition != "" {
			p("   Competition: %s\n", e.Competition)
		}
		if e.Notes != "" {
			p("   Notes: %s\n", e.Notes)
		}
		if e.Home != nil && e.Away != nil {
			p("   Final Score:\n")
			for _, s := range []*Score{e.Home, e.Away} {
				p("     %s: %d points (%d goals, %d points)\n", s.Team, s.Total, s.Goals, s.Points)
			}
		}
		p("   Status: %s\n\n", e.Status)
	}

	p("%s\n", rule)
	p("SUMMARY TOTALS:\n")
	p("%s\n", rule)
	for _, c := range r.Breakdown {
		p("Total %s: %d matches\n", c.Category, c.Count)
	}
	p("\nGrand Total: %d matches\n", r.Total)
	return b.String()
}

// Filename is the download name for a report, e.g. GAA_Referee_Report_2024_Senior_Junior.txt.
func Filename(year int, categories []string) string {
	parts := append([]string{"GAA_Referee_Report", strconv.Itoa(year)}, categories...)
	for i, s := range parts {
		parts[i] = strings.Map(func(r rune) rune {
			switch r {
			case ' ', '/', '\\', '"', ':':
				return '-'
			}
			return r
		}, s)
	}
	return strings.Join(parts, "_") + ".txt"
}
