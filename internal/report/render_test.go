package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender_Golden(t *testing.T) {
	rep := Report{
		Year:        2024,
		GeneratedAt: time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC),
		Categories:  []string{"Senior", "Junior"},
		Total:       2,
		Breakdown:   []CategoryCount{{"Senior", 1}, {"Junior", 1}},
		Entries: []Entry{
			{
				Number: 1, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Time: "14:00",
				HomeTeam: "Clontarf", AwayTeam: "Raheny", Category: "Senior", AgeGroup: "Adult",
				Venue: "Clontarf Road", PeriodDuration: 30, IntervalDuration: 15, TotalMinutes: 75,
				Competition: "AFL1", Notes: "Floodlit",
				Home:   &Score{Team: "Clontarf", Total: 17, Goals: 2, Points: 11},
				Away:   &Score{Team: "Raheny", Total: 12, Goals: 1, Points: 9},
				Status: "Completed",
			},
			{
				Number: 2, Date: time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC), Time: "11:00",
				HomeTeam: "Cuala", AwayTeam: "Naomh Olaf", Category: "Junior",
				PeriodDuration: 25, IntervalDuration: 10, TotalMinutes: 60,
				Status: "Scheduled",
			},
		},
	}

	want := "GAA Referee Report - 2024\n" +
		"Generated on: 31/12/2024\n" +
		"Game Types: Senior, Junior\n" +
		"Total Matches: 2\n" +
		"\n" +
		"Game Type Breakdown:\n" +
		"  Senior: 1 matches\n" +
		"  Junior: 1 matches\n" +
		"\n" +
		"Match Details:\n" +
		"==========================================\n" +
		"\n" +
		"Match 1: 01/03/2024 at 14:00\n" +
		"   Clontarf vs Raheny\n" +
		"   Senior - Adult\n" +
		"   Venue: Clontarf Road\n" +
		"   Duration: 2 × 30min + 15min interval (Total: 75min)\n" +
		"   Competition: AFL1\n" +
		"   Notes: Floodlit\n" +
		"   Final Score:\n" +
		"     Clontarf: 17 points (2 goals, 11 points)\n" +
		"     Raheny: 12 points (1 goals, 9 points)\n" +
		"   Status: Completed\n" +
		"\n" +
		"Match 2: 07/09/2024 at 11:00\n" +
		"   Cuala vs Naomh Olaf\n" +
		"   Junior\n" +
		"   Duration: 2 × 25min + 10min interval (Total: 60min)\n" +
		"   Status: Scheduled\n" +
		"\n" +
		"==========================================\n" +
		"SUMMARY TOTALS:\n" +
		"==========================================\n" +
		"Total Senior: 1 matches\n" +
		"Total Junior: 1 matches\n" +
		"\n" +
		"Grand Total: 2 matches\n"

	assert.Equal(t, want, Render(rep))
}

func TestRender_Empty(t *testing.T) {
	out := Render(Report{Year: 2023, GeneratedAt: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Categories: []string{"U12"}})
	assert.Contains(t, out, "Total Matches: 0\n")
	assert.Contains(t, out, "Grand Total: 0 matches\n")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "GAA_Referee_Report_2024_Senior_Junior.txt", Filename(2024, []string{"Senior", "Junior"}))
	assert.Equal(t, "GAA_Referee_Report_2024_Minor-A.txt", Filename(2024, []string{"Minor A"}))
}
