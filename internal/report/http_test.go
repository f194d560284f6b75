package report

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gally74/gaa-match-scheduler/internal/matches"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, seasonStore(t))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHTTP_ReportDownload(t *testing.T) {
	r := newTestRouter(t)
	w := get(r, "/api/report?year=2024&category=Senior")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "GAA_Referee_Report_2024_Senior.txt") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.Contains(w.Body.String(), "Grand Total: 2 matches") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestHTTP_ReportJSON(t *testing.T) {
	r := newTestRouter(t)
	w := get(r, "/api/report.json?year=2025&category=Senior,Junior")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rep Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Total != 1 || rep.Entries[0].Category != "Junior" {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestHTTP_ReportErrors(t *testing.T) {
	r := newTestRouter(t)
	if w := get(r, "/api/report?year=2024"); w.Code != http.StatusBadRequest {
		t.Fatalf("no category: expected 400, got %d", w.Code)
	}
	if w := get(r, "/api/report?year=twenty&category=Senior"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad year: expected 400, got %d", w.Code)
	}
}

type staticSource []matches.Match

func (s staticSource) List() []matches.Match { return s }

func TestHTTP_ReportDispositionEscapesName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cat := "U14; Óg"
	RegisterRoutes(r, staticSource{{ID: "1", HomeTeam: "A", AwayTeam: "B", GameType: cat,
		Date: "2024-05-01", Time: "10:00", PeriodDuration: 30, IntervalDuration: 10, Status: matches.StatusScheduled}})

	w := get(r, "/api/report?year=2024&category="+url.QueryEscape(cat))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	kind, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("bad disposition %q: %v", w.Header().Get("Content-Disposition"), err)
	}
	if kind != "attachment" || params["filename"] != Filename(2024, []string{cat}) {
		t.Fatalf("unexpected disposition %q %v", kind, params)
	}
}
