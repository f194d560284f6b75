package matches

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestNormHeaders_Aliases(t *testing.T) {
	hdr := []string{"Home Team", "Away", "Grade", "Date |", "Throw-in", "Half", "Interval", "Pitch", "Comp.", "Age", "Result", "Nótaí"}
	m := normHeaders(hdr)
	assertEq(t, m[0], "hometeam")
	assertEq(t, m[1], "awayteam")
	assertEq(t, m[2], "gametype")
	assertEq(t, m[3], "date") // strip pipe and space
	assertEq(t, m[4], "time")
	assertEq(t, m[5], "periodduration")
	assertEq(t, m[6], "intervalduration")
	assertEq(t, m[7], "venue")
	assertEq(t, m[8], "competition")
	assertEq(t, m[9], "agegroup")
	assertEq(t, m[10], "result")
	assertEq(t, m[11], "notai") // fada folded, no alias
}

func TestParseCSV_SemicolonWithResult(t *testing.T) {
	csv := "Date;Throw-in;Grade;Home Team;Away Team;Venue;Result\r\n" +
		"01/03/2024;14:00;Senior;St Brigid's;Castleknock;Russell Park;2-10 : 1-08\r\n" +
		";;;;;;\r\n"

	rows, err := ParseImport("fixtures.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	assertEq(t, r.Line, 2)
	assertEq(t, r.Draft.Date, "2024-03-01")
	assertEq(t, r.Draft.Time, "14:00")
	assertEq(t, r.Draft.HomeTeam, "St Brigid's")
	assertEq(t, r.Draft.PeriodDuration, DefaultPeriodDuration)
	assertEq(t, r.Draft.IntervalDuration, DefaultIntervalDuration)
	if r.Scores == nil {
		t.Fatalf("expected scores")
	}
	assertEq(t, *r.Scores.HomeGoals, 2)
	assertEq(t, *r.Scores.HomePoints, 10)
	assertEq(t, *r.Scores.AwayGoals, 1)
	assertEq(t, *r.Scores.AwayPoints, 8)
}

func TestParseCSV_CommaNoResult(t *testing.T) {
	csv := "home team,away team,game type,date,time,half duration,interval duration\n" +
		"Dunboyne,Ratoath,U15,2024-06-02,11:00,25,10\n"
	rows, err := ParseImport("f.CSV", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	assertEq(t, len(rows), 1)
	assertEq(t, rows[0].Draft.PeriodDuration, 25)
	assertEq(t, rows[0].Draft.IntervalDuration, 10)
	if rows[0].Scores != nil {
		t.Fatalf("expected no scores, got %+v", rows[0].Scores)
	}
}

func TestParseXLSX_Basic(t *testing.T) {
	f := excelize.NewFile()
	sh := f.GetSheetName(0)
	header := []string{"Date", "Time", "Game Type", "Home Team", "Away Team", "Venue", "Home Goals", "Home Points", "Away Goals", "Away Points"}
	data := []string{"2024-07-14", "15:30", "Junior", "Kilmacud Crokes", "Na Fianna", "Glenalbyn", "1", "12", "0", "15"}
	if err := f.SetSheetRow(sh, "A1", &header); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow(sh, "A2", &data); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	rows, err := ParseImport("fixtures.xlsx", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	assertEq(t, r.Draft.Venue, "Glenalbyn")
	assertEq(t, TotalScore(*r.Scores.HomeGoals, *r.Scores.HomePoints), 15)
	assertEq(t, TotalScore(*r.Scores.AwayGoals, *r.Scores.AwayPoints), 15)
}

func TestParseImport_UnsupportedType(t *testing.T) {
	if _, err := ParseImport("fixtures.pdf", strings.NewReader("")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStoreImport_CreatesAndPromotes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	csv := "Date,Time,Grade,Home,Away,Result\n" +
		"2024-03-01,14:00,Senior,A,B,1-05 0-07\n" +
		"2024-03-08,14:00,Senior,C,D,\n" +
		"2024-03-15,,Senior,E,F,\n"
	rows, err := ParseImport("x.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	res := s.Import(ctx, rows)
	assertEq(t, res.Imported, 2)
	assertEq(t, res.Failed, 1)
	if !strings.HasPrefix(res.Errors[0], "row 4:") {
		t.Fatalf("unexpected error text %q", res.Errors[0])
	}

	list := s.List()
	assertEq(t, list[0].Status, StatusCompleted)
	assertEq(t, list[0].HomeTotal(), 8)
	assertEq(t, list[1].Status, StatusScheduled)
}

func TestStoreImport_NegativeScoreStoresNothing(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	csv := "Home,Away,Grade,Date,Time,Home Goals,Home Points\n" +
		"A,B,Senior,2024-03-01,14:00,-1,5\n"
	rows, err := ParseImport("x.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	res := s.Import(ctx, rows)
	assertEq(t, res.Imported, 0)
	assertEq(t, res.Failed, 1)
	if !strings.Contains(res.Errors[0], "homeGoals") {
		t.Fatalf("unexpected error text %q", res.Errors[0])
	}
	assertEq(t, len(s.List()), 0)
}

func TestStoreImport_FailedScoreSaveLeavesNothing(t *testing.T) {
	ctx := context.Background()
	slot := &failAfterSlot{okSaves: 1}
	s := NewStore(ctx, slot, testOptions()...)
	rows := []ImportRow{{Line: 2, Draft: sampleDraft(), Scores: &Fields{HomeGoals: intp(1)}}}

	res := s.Import(ctx, rows)
	assertEq(t, res.Failed, 1)
	assertEq(t, len(s.List()), 0)
}
