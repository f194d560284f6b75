// Package report builds the per-year referee report from stored matches.
//
// Building (YearReport) decides what goes in; Render decides how it is
// printed. The two are kept apart so each can be tested on its own.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/gally74/gaa-match-scheduler/internal/matches"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Score is one side's result line.
type Score struct {
	Team   string `json:"team"`
	Total  int    `json:"total"`
	Goals  int    `json:"goals"`
	Points int    `json:"points"`
}

type Entry struct {
	Number           int       `json:"number"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	HomeTeam         string    `json:"homeTeam"`
	AwayTeam         string    `json:"awayTeam"`
	Category         string    `json:"category"`
	AgeGroup         string    `json:"ageGroup,omitempty"`
	Venue            string    `json:"venue,omitempty"`
	PeriodDuration   int       `json:"periodDuration"`
	IntervalDuration int       `json:"intervalDuration"`
	TotalMinutes     int       `json:"totalMinutes"`
	Competition      string    `json:"competition,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Home             *Score    `json:"home,omitempty"`
	Away             *Score    `json:"away,omitempty"`
	Status           string    `json:"status"`
}

type Report struct {
	Year        int             `json:"year"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Categories  []string        `json:"categories"`
	Total       int             `json:"total"`
	Breakdown   []CategoryCount `json:"breakdown"`
	Entries     []Entry         `json:"entries"`
}

// Empty reports whether no match was selected.
func (r Report) Empty() bool { return r.Total == 0 }

// YearReport is YearReportAt stamped with the current time.
func YearReport(records []matches.Match, year int, categories []string) (Report, error) {
	return YearReportAt(records, year, categories, time.Now())
}

// YearReportAt selects the matches played in year whose category is in
// categories, ordered by date, and summarises them.
func YearReportAt(records []matches.Match, year int, categories []string, now time.Time) (Report, error) {
	if len(categories) == 0 {
		return Report{}, &matches.EmptySelectionError{}
	}

	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	type dated struct {
		m    matches.Match
		date time.Time
	}
	var selected []dated
	for _, m := range records {
		if !wanted[m.GameType] {
			continue
		}
		d, err := matches.ParseDate(m.Date)
		if err != nil || d.Year() != year {
			continue
		}
		selected = append(selected, dated{m: m, date: d})
	}
	sort.SliceStable(selected, func(i, j int) bool { return selected[i].date.Before(selected[j].date) })

	rep := Report{
		Year:        year,
		GeneratedAt: now,
		Categories:  append([]string(nil), categories...),
		Total:       len(selected),
		Breakdown:   []CategoryCount{},
		Entries:     make([]Entry, 0, len(selected)),
	}
	pos := map[string]int{}
	for i, s := range selected {
		m := s.m
		if idx, ok := pos[m.GameType]; ok {
			rep.Breakdown[idx].Count++
		} else {
			pos[m.GameType] = len(rep.Breakdown)
			rep.Breakdown = append(rep.Breakdown, CategoryCount{Category: m.GameType, Count: 1})
		}

		e := Entry{
			Number:           i + 1,
			Date:             s.date,
			Time:             m.Time,
			HomeTeam:         m.HomeTeam,
			AwayTeam:         m.AwayTeam,
			Category:         m.GameType,
			AgeGroup:         m.AgeGroup,
			Venue:            m.Venue,
			PeriodDuration:   m.PeriodDuration,
			IntervalDuration: m.IntervalDuration,
			TotalMinutes:     matches.TotalMinutes(m.PeriodDuration, m.IntervalDuration),
			Competition:      m.Competition,
			Notes:            m.Notes,
			Status:           capitalize(string(m.Status)),
		}
		if w, err := m.Window(); err == nil {
			e.TotalMinutes = w.Minutes()
		}
		if m.HomeTotal() > 0 || m.AwayTotal() > 0 {
			e.Home = &Score{Team: m.HomeTeam, Total: m.HomeTotal(), Goals: m.HomeGoals, Points: m.HomePoints}
			e.Away = &Score{Team: m.AwayTeam, Total: m.AwayTotal(), Goals: m.AwayGoals, Points: m.AwayPoints}
		}
		rep.Entries = append(rep.Entries, e)
	}
	return rep, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
