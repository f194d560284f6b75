package matches

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id",
	"date", "time", "end_time",
	"game_type", "home_team", "away_team",
	"venue", "competition", "age_group",
	"period_duration", "interval_duration",
	"status",
	"home_goals", "home_points", "home_total",
	"away_goals", "away_points", "away_total",
	"notes",
	"created_at", "updated_at",
}

// WriteCSV exports list with computed totals and end time. end_time is empty
// for records whose date or time does not parse.
func WriteCSV(w io.Writer, list []Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	itoa := strconv.Itoa
	for _, m := range list {
		end := ""
		if win, err := m.Window(); err == nil {
			end = win.End.Format(TimeLayout)
		}
		row := []string{
			m.ID,
			m.Date, m.Time, end,
			m.GameType, m.HomeTeam, m.AwayTeam,
			m.Venue, m.Competition, m.AgeGroup,
			itoa(m.PeriodDuration), itoa(m.IntervalDuration),
			string(m.Status),
			itoa(m.HomeGoals), itoa(m.HomePoints), itoa(m.HomeTotal()),
			itoa(m.AwayGoals), itoa(m.AwayPoints), itoa(m.AwayTotal()),
			m.Notes,
			m.CreatedAt.UTC().Format(time.RFC3339), m.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
