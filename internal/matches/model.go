package matches

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// Match is a single fixture as persisted in the store document.
type Match struct {
	ID               string    `json:"id"`
	HomeTeam         string    `json:"homeTeam"`
	AwayTeam         string    `json:"awayTeam"`
	GameType         string    `json:"gameType"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	PeriodDuration   int       `json:"periodDuration"`
	IntervalDuration int       `json:"intervalDuration"`
	Status           Status    `json:"status"`
	HomeGoals        int       `json:"homeGoals"`
	HomePoints       int       `json:"homePoints"`
	AwayGoals        int       `json:"awayGoals"`
	AwayPoints       int       `json:"awayPoints"`
	Notes            string    `json:"notes,omitempty"`
	Venue            string    `json:"venue,omitempty"`
	Competition      string    `json:"competition,omitempty"`
	AgeGroup         string    `json:"ageGroup,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (m Match) HomeTotal() int { return TotalScore(m.HomeGoals, m.HomePoints) }
func (m Match) AwayTotal() int { return TotalScore(m.AwayGoals, m.AwayPoints) }

// HasScore reports whether any of the four score fields is set.
func (m Match) HasScore() bool {
	return m.HomeGoals > 0 || m.HomePoints > 0 || m.AwayGoals > 0 || m.AwayPoints > 0
}

// Window is the match's start/end computed from date, time and durations.
func (m Match) Window() (Window, error) {
	return MatchWindow(m.Date, m.Time, m.PeriodDuration, m.IntervalDuration)
}

// Draft carries the fields of a new match as submitted by a form.
type Draft struct {
	HomeTeam         string `json:"homeTeam"`
	AwayTeam         string `json:"awayTeam"`
	GameType         string `json:"gameType"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PeriodDuration   int    `json:"periodDuration"`
	IntervalDuration int    `json:"intervalDuration"`
	Notes            string `json:"notes"`
	Venue            string `json:"venue"`
	Competition      string `json:"competition"`
	AgeGroup         string `json:"ageGroup"`
}

// Fields is a partial update. Nil pointers leave the stored value alone.
type Fields struct {
	HomeTeam         *string `json:"homeTeam"`
	AwayTeam         *string `json:"awayTeam"`
	GameType         *string `json:"gameType"`
	Date             *string `json:"date"`
	Time             *string `json:"time"`
	PeriodDuration   *int    `json:"periodDuration"`
	IntervalDuration *int    `json:"intervalDuration"`
	Status           *Status `json:"status"`
	HomeGoals        *int    `json:"homeGoals"`
	HomePoints       *int    `json:"homePoints"`
	AwayGoals        *int    `json:"awayGoals"`
	AwayPoints       *int    `json:"awayPoints"`
	Notes            *string `json:"notes"`
	Venue            *string `json:"venue"`
	Competition      *string `json:"competition"`
	AgeGroup         *string `json:"ageGroup"`
}

func (f Fields) touchesScore() bool {
	return f.HomeGoals != nil || f.HomePoints != nil || f.AwayGoals != nil || f.AwayPoints != nil
}
