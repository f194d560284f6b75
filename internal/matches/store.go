package matches

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persister holds the serialised collection in a single slot.
// Load returns a nil slice and no error when nothing has been saved yet.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, doc []byte) error
}

// Store owns the match collection. Every mutation is written through to the
// persister before it returns; callers only ever see copies.
type Store struct {
	mu      sync.Mutex
	p       Persister
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
	records []Match
}

type Option func(*Store)

func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func WithIDGenerator(gen func() string) Option { return func(s *Store) { s.newID = gen } }

func WithLogger(l *log.Logger) Option { return func(s *Store) { s.logger = l } }

// NewStore builds a store over p and loads whatever p currently holds.
func NewStore(ctx context.Context, p Persister, opts ...Option) *Store {
	s := &Store{
		p:      p,
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.Load(ctx)
	return s
}

// Load re-reads the persisted collection and returns a copy of it. Missing or
// unreadable data yields an empty collection; the failure is only logged.
func (s *Store) Load(ctx context.Context) []Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []Match{}
	b, err := s.p.Load(ctx)
	if err != nil {
		s.logger.Printf("load matches: %v (starting empty)", err)
		return s.snapshot()
	}
	list, err := DecodeDocument(b)
	if err != nil {
		s.logger.Printf("decode matches: %v (starting empty)", err)
		return s.snapshot()
	}
	s.records = list
	return s.snapshot()
}

func (s *Store) List() []Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) Get(id string) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Match{}, &NotFoundError{ID: id}
	}
	return s.records[i], nil
}

// Project is the view over the current collection.
func (s *Store) Project(filter Filter) ([]Match, error) {
	return Project(s.List(), filter)
}

func (s *Store) Create(ctx context.Context, d Draft) (Match, error) {
	d = trimDraft(d)
	if err := validateDraft(d); err != nil {
		return Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	m := Match{
		ID:               s.newID(),
		HomeTeam:         d.HomeTeam,
		AwayTeam:         d.AwayTeam,
		GameType:         d.GameType,
		Date:             d.Date,
		Time:             d.Time,
		PeriodDuration:   d.PeriodDuration,
		IntervalDuration: d.IntervalDuration,
		Status:           StatusScheduled,
		Notes:            d.Notes,
		Venue:            d.Venue,
		Competition:      d.Competition,
		AgeGroup:         d.AgeGroup,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for s.indexOf(m.ID) >= 0 {
		m.ID = s.newID()
	}

	prev := s.records
	s.records = append(s.snapshot(), m)
	if err := s.flush(ctx, prev); err != nil {
		return Match{}, err
	}
	return m, nil
}

// Update merges f over the stored match. Entering any score on a scheduled
// match marks it completed; clearing scores never reverts it.
func (s *Store) Update(ctx context.Context, id string, f Fields) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Match{}, &NotFoundError{ID: id}
	}
	m, err := merge(s.records[i], f)
	if err != nil {
		return Match{}, err
	}
	if f.touchesScore() && m.HasScore() && m.Status == StatusScheduled {
		m.Status = StatusCompleted
	}
	m.UpdatedAt = s.now()

	prev := s.records
	s.records = s.snapshot()
	s.records[i] = m
	if err := s.flush(ctx, prev); err != nil {
		return Match{}, err
	}
	return m, nil
}

// Remove deletes the match with id. Unknown ids are ignored.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	prev := s.records
	next := make([]Match, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.records = next
	return s.flush(ctx, prev)
}

// ToggleStatus flips scheduled/completed regardless of score.
func (s *Store) ToggleStatus(ctx context.Context, id string) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Match{}, &NotFoundError{ID: id}
	}
	m := s.records[i]
	if m.Status == StatusCompleted {
		m.Status = StatusScheduled
	} else {
		m.Status = StatusCompleted
	}
	m.UpdatedAt = s.now()

	prev := s.records
	s.records = s.snapshot()
	s.records[i] = m
	if err := s.flush(ctx, prev); err != nil {
		return Match{}, err
	}
	return m, nil
}

// Clear removes every match and returns how many there were.
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = []Match{}
	if err := s.flush(ctx, prev); err != nil {
		return 0, err
	}
	return len(prev), nil
}

// flush writes the collection; on failure the in-memory state goes back to prev.
func (s *Store) flush(ctx context.Context, prev []Match) error {
	b, err := EncodeDocument(s.records)
	if err == nil {
		err = s.p.Save(ctx, b)
	}
	if err != nil {
		s.records = prev
		return fmt.Errorf("save matches: %w", err)
	}
	return nil
}

func (s *Store) snapshot() []Match {
	out := make([]Match, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// ----- validation -----

func trimDraft(d Draft) Draft {
	d.HomeTeam = strings.TrimSpace(d.HomeTeam)
	d.AwayTeam = strings.TrimSpace(d.AwayTeam)
	d.GameType = strings.TrimSpace(d.GameType)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	d.Notes = strings.TrimSpace(d.Notes)
	d.Venue = strings.TrimSpace(d.Venue)
	d.Competition = strings.TrimSpace(d.Competition)
	d.AgeGroup = strings.TrimSpace(d.AgeGroup)
	return d
}

func validateDraft(d Draft) error {
	var bad []string
	required := []struct{ name, val string }{
		{"homeTeam", d.HomeTeam},
		{"awayTeam", d.AwayTeam},
		{"gameType", d.GameType},
		{"date", d.Date},
		{"time", d.Time},
	}
	for _, r := range required {
		if r.val == "" {
			bad = append(bad, r.name)
		}
	}
	bad = append(bad, checkSchedule(d.Date, d.Time, d.PeriodDuration, d.IntervalDuration)...)
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// checkSchedule reports fields that are present but unusable for the match window.
func checkSchedule(date, clock string, period, interval int) []string {
	var bad []string
	if date != "" {
		if _, err := ParseDate(date); err != nil {
			bad = append(bad, "date")
		}
	}
	if date != "" && clock != "" && len(bad) == 0 {
		if _, err := ParseLocal(date, clock, time.UTC); err != nil {
			bad = append(bad, "time")
		}
	}
	if period <= 0 {
		bad = append(bad, "periodDuration")
	}
	if interval < 0 {
		bad = append(bad, "intervalDuration")
	}
	return bad
}

func merge(m Match, f Fields) (Match, error) {
	var bad []string
	setReq := func(name string, dst *string, src *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if v == "" {
			bad = append(bad, name)
			return
		}
		*dst = v
	}
	setOpt := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setScore := func(name string, dst *int, src *int) {
		if src == nil {
			return
		}
		if *src < 0 {
			bad = append(bad, name)
			return
		}
		*dst = *src
	}

	setReq("homeTeam", &m.HomeTeam, f.HomeTeam)
	setReq("awayTeam", &m.AwayTeam, f.AwayTeam)
	setReq("gameType", &m.GameType, f.GameType)
	setReq("date", &m.Date, f.Date)
	setReq("time", &m.Time, f.Time)
	setOpt(&m.Notes, f.Notes)
	setOpt(&m.Venue, f.Venue)
	setOpt(&m.Competition, f.Competition)
	setOpt(&m.AgeGroup, f.AgeGroup)
	if f.PeriodDuration != nil {
		m.PeriodDuration = *f.PeriodDuration
	}
	if f.IntervalDuration != nil {
		m.IntervalDuration = *f.IntervalDuration
	}
	if f.Status != nil {
		switch *f.Status {
		case StatusScheduled, StatusCompleted:
			m.Status = *f.Status
		default:
			bad = append(bad, "status")
		}
	}
	setScore("homeGoals", &m.HomeGoals, f.HomeGoals)
	setScore("homePoints", &m.HomePoints, f.HomePoints)
	setScore("awayGoals", &m.AwayGoals, f.AwayGoals)
	setScore("awayPoints", &m.AwayPoints, f.AwayPoints)

	// recheck only the schedule fields this update sets
	if len(bad) == 0 {
		touched := map[string]bool{
			"date":             f.Date != nil || f.Time != nil,
			"time":             f.Date != nil || f.Time != nil,
			"periodDuration":   f.PeriodDuration != nil,
			"intervalDuration": f.IntervalDuration != nil,
		}
		for _, name := range checkSchedule(m.Date, m.Time, m.PeriodDuration, m.IntervalDuration) {
			if touched[name] {
				bad = append(bad, name)
			}
		}
	}
	if len(bad) > 0 {
		return Match{}, &ValidationError{Fields: bad}
	}
	return m, nil
}
