package matches

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"
)

// Used when an imported row has no half/interval column.
const (
	DefaultPeriodDuration   = 30
	DefaultIntervalDuration = 15
)

// ImportRow is one parsed fixture line. Scores is nil when the row had no result.
type ImportRow struct {
	Line   int
	Draft  Draft
	Scores *Fields
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// ParseImport reads a CSV or XLSX fixture list; name only selects the format.
func ParseImport(name string, r io.Reader) ([]ImportRow, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		b, err := io.ReadAll(io.LimitReader(r, 10<<20))
		if err != nil {
			return nil, err
		}
		return parseXLSX(b)
	default:
		return nil, fmt.Errorf("unsupported file type: %q", ext)
	}
}

// Import creates each row through the normal create/update path so the same
// validation and auto-completion apply as for form input.
func (s *Store) Import(ctx context.Context, rows []ImportRow) ImportResult {
	res := ImportResult{Errors: []string{}}
	for _, row := range rows {
		if err := s.importRow(ctx, row); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row.Line, err))
			continue
		}
		res.Imported++
	}
	return res
}

// importRow stores one row or nothing: a row whose scores are rejected after
// the create is removed again.
func (s *Store) importRow(ctx context.Context, row ImportRow) error {
	if row.Scores != nil {
		if bad := negativeScores(*row.Scores); len(bad) > 0 {
			return &ValidationError{Fields: bad}
		}
	}
	m, err := s.Create(ctx, row.Draft)
	if err != nil || row.Scores == nil {
		return err
	}
	if _, err := s.Update(ctx, m.ID, *row.Scores); err != nil {
		if rmErr := s.Remove(ctx, m.ID); rmErr != nil {
			return fmt.Errorf("%w (undo create: %v)", err, rmErr)
		}
		return err
	}
	return nil
}

func negativeScores(f Fields) []string {
	var bad []string
	for _, sc := range []struct {
		name string
		v    *int
	}{
		{"homeGoals", f.HomeGoals},
		{"homePoints", f.HomePoints},
		{"awayGoals", f.AwayGoals},
		{"awayPoints", f.AwayPoints},
	} {
		if sc.v != nil && *sc.v < 0 {
			bad = append(bad, sc.name)
		}
	}
	return bad
}

func parseCSV(r io.Reader) ([]ImportRow, error) {
	br := bufio.NewReader(r)
	// sniff the delimiter from the header line
	line, _ := br.ReadString('\n')
	reader := csv.NewReader(io.MultiReader(strings.NewReader(line), br))
	reader.FieldsPerRecord = -1
	if strings.Count(line, ";") > strings.Count(line, ",") {
		reader.Comma = ';'
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return rowsToImport(rows)
}

func parseXLSX(b []byte) ([]ImportRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rowsToImport(rows)
}

func rowsToImport(rows [][]string) ([]ImportRow, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	headers := normHeaders(rows[0])
	var out []ImportRow
	for i := 1; i < len(rows); i++ {
		if strings.TrimSpace(strings.Join(rows[i], "")) == "" {
			continue
		}
		out = append(out, rowToImport(headers, rows[i], i+1))
	}
	return out, nil
}

var fadaFold = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

var headerAliases = map[string]string{
	"home":         "hometeam",
	"away":         "awayteam",
	"grade":        "gametype",
	"category":     "gametype",
	"type":         "gametype",
	"matchdate":    "date",
	"throwin":      "time",
	"starttime":    "time",
	"matchtime":    "time",
	"throwintime":  "time",
	"half":         "periodduration",
	"halfduration": "periodduration",
	"period":       "periodduration",
	"interval":     "intervalduration",
	"halftime":     "intervalduration",
	"ground":       "venue",
	"pitch":        "venue",
	"location":     "venue",
	"comp":         "competition",
	"age":          "agegroup",
	"note":         "notes",
	"comments":     "notes",
	"score":        "result",
	"finalscore":   "result",
	"homegoal":     "homegoals",
	"homepoint":    "homepoints",
	"awaygoal":     "awaygoals",
	"awaypoint":    "awaypoints",
}

// normHeaders lowercases, folds fadas, keeps letters/digits and resolves aliases.
func normHeaders(hdr []string) map[int]string {
	m := make(map[int]string, len(hdr))
	for i, h := range hdr {
		k := fadaFold.Replace(strings.ToLower(strings.TrimSpace(h)))
		b := strings.Builder{}
		for _, r := range k {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		k = b.String()
		if alias, ok := headerAliases[k]; ok {
			k = alias
		}
		m[i] = k
	}
	return m
}

var gaaScore = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)

var importDateLayouts = []string{DateLayout, "02/01/2006", "2/1/2006", "02-01-2006", "02.01.2006"}

func normDate(s string) string {
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}
	return s
}

func rowToImport(h map[int]string, row []string, line int) ImportRow {
	get := func(key string) string {
		for i, k := range h {
			if k == key && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}
	atoi := func(s string, def int) int {
		if s == "" {
			return def
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return def
		}
		return v
	}

	d := Draft{
		HomeTeam:         get("hometeam"),
		AwayTeam:         get("awayteam"),
		GameType:         get("gametype"),
		Date:             normDate(get("date")),
		Time:             get("time"),
		PeriodDuration:   atoi(get("periodduration"), DefaultPeriodDuration),
		IntervalDuration: atoi(get("intervalduration"), DefaultIntervalDuration),
		Venue:            get("venue"),
		Competition:      get("competition"),
		AgeGroup:         get("agegroup"),
		Notes:            get("notes"),
	}
	out := ImportRow{Line: line, Draft: d}

	hg, hp := atoi(get("homegoals"), 0), atoi(get("homepoints"), 0)
	ag, ap := atoi(get("awaygoals"), 0), atoi(get("awaypoints"), 0)
	// "2-10 1-08" style result: goals-points for home then away
	if r := gaaScore.FindAllStringSubmatch(get("result"), 2); len(r) == 2 {
		hg, hp = atoi(r[0][1], 0), atoi(r[0][2], 0)
		ag, ap = atoi(r[1][1], 0), atoi(r[1][2], 0)
	}
	if hg > 0 || hp > 0 || ag > 0 || ap > 0 {
		out.Scores = &Fields{HomeGoals: &hg, HomePoints: &hp, AwayGoals: &ag, AwayPoints: &ap}
	}
	return out
}
