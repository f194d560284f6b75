package matches

import (
	"bytes"
	"encoding/json"
	"time"
)

// EncodeDocument serialises the whole collection as one JSON array.
func EncodeDocument(list []Match) ([]byte, error) {
	if list == nil {
		list = []Match{}
	}
	return json.Marshal(list)
}

// DecodeDocument parses a stored collection. An empty blob is an empty collection.
// Records written by the older browser build (numeric ids, halfDuration,
// homeTeamGoals etc.) are normalised to the current field names.
func DecodeDocument(b []byte) ([]Match, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return []Match{}, nil
	}
	var raw []storedMatch
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	out := make([]Match, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.toMatch())
	}
	return out, nil
}

type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

type storedMatch struct {
	ID               flexID    `json:"id"`
	HomeTeam         string    `json:"homeTeam"`
	AwayTeam         string    `json:"awayTeam"`
	GameType         string    `json:"gameType"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	PeriodDuration   *int      `json:"periodDuration"`
	IntervalDuration *int      `json:"intervalDuration"`
	Status           Status    `json:"status"`
	HomeGoals        *int      `json:"homeGoals"`
	HomePoints       *int      `json:"homePoints"`
	AwayGoals        *int      `json:"awayGoals"`
	AwayPoints       *int      `json:"awayPoints"`
	Notes            string    `json:"notes"`
	Venue            string    `json:"venue"`
	Competition      string    `json:"competition"`
	AgeGroup         string    `json:"ageGroup"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// browser build field names
	HalfDuration   *int `json:"halfDuration"`
	HomeTeamGoals  *int `json:"homeTeamGoals"`
	HomeTeamPoints *int `json:"homeTeamPoints"`
	AwayTeamGoals  *int `json:"awayTeamGoals"`
	AwayTeamPoints *int `json:"awayTeamPoints"`
}

func firstInt(ps ...*int) int {
	for _, p := range ps {
		if p != nil {
			if *p < 0 {
				return 0
			}
			return *p
		}
	}
	return 0
}

func (r storedMatch) toMatch() Match {
	m := Match{
		ID:               string(r.ID),
		HomeTeam:         r.HomeTeam,
		AwayTeam:         r.AwayTeam,
		GameType:         r.GameType,
		Date:             r.Date,
		Time:             r.Time,
		PeriodDuration:   firstInt(r.PeriodDuration, r.HalfDuration),
		IntervalDuration: firstInt(r.IntervalDuration),
		Status:           r.Status,
		HomeGoals:        firstInt(r.HomeGoals, r.HomeTeamGoals),
		HomePoints:       firstInt(r.HomePoints, r.HomeTeamPoints),
		AwayGoals:        firstInt(r.AwayGoals, r.AwayTeamGoals),
		AwayPoints:       firstInt(r.AwayPoints, r.AwayTeamPoints),
		Notes:            r.Notes,
		Venue:            r.Venue,
		Competition:      r.Competition,
		AgeGroup:         r.AgeGroup,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if m.Status != StatusCompleted {
		m.Status = StatusScheduled
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}
	return m
}
