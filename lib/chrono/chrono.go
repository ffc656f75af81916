package chrono

import (
	"time"
)

// DefaultLocation is the timezone the county recorder dates its documents in.
const DefaultLocation = "America/Denver"

// Clock is the interface that anything depending on the system clock should use.
type Clock interface {
	Now() time.Time
}

// StandardClock reads the system clock and reports it in a fixed location, so
// that Year()/Month()/Day() agree with the recorder's calendar regardless of
// where the program runs.
type StandardClock struct {
	location *time.Location
}

func NewStandardClock(name string) (StandardClock, error) {
	if name == "" {
		name = DefaultLocation
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return StandardClock{}, err
	}
	return StandardClock{location: location}, nil
}

func (c StandardClock) Now() time.Time {
	return time.Now().In(c.location)
}

func (c StandardClock) Location() *time.Location {
	return c.location
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Date returns midnight UTC of the calendar date t falls on in its own location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b, negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int((Date(b).Unix() - Date(a).Unix()) / 86400)
}
