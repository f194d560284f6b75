package matches

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Window is the span of a match: two periods plus one interval.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Minutes() int { return int(w.End.Sub(w.Start) / time.Minute) }

// TotalMinutes is the full playing time including the interval.
func TotalMinutes(periodDuration, intervalDuration int) int {
	return periodDuration*2 + intervalDuration
}

// MatchWindow resolves date + time in the local zone and adds the match length.
func MatchWindow(date, clock string, periodDuration, intervalDuration int) (Window, error) {
	start, err := ParseLocal(date, clock, time.Local)
	if err != nil {
		return Window{}, err
	}
	end := start.Add(time.Duration(TotalMinutes(periodDuration, intervalDuration)) * time.Minute)
	return Window{Start: start, End: end}, nil
}

// ParseLocal builds a time in loc from an ISO date and an HH:MM (or HH:MM:SS) clock.
func ParseLocal(date, clock string, loc *time.Location) (time.Time, error) {
	if date == "" || clock == "" {
		return time.Time{}, &MalformedDateError{Date: date, Time: clock, Err: errors.New("empty date or time")}
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		var err2 error
		if t, err2 = time.ParseInLocation(DateLayout+" 15:04:05", date+" "+clock, loc); err2 != nil {
			return time.Time{}, &MalformedDateError{Date: date, Time: clock, Err: err}
		}
	}
	return t, nil
}

// ParseDate parses the calendar date alone, at midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, &MalformedDateError{Date: date, Err: err}
	}
	return t, nil
}
