package reporting

import (
	"time"

	"clinic-admin/internal/domain/apperror"
)

// LabelLayout is the day format printed on generated documents.
const LabelLayout = "02/01/2006"

// Interval is an inclusive range of calendar days in a location.
type Interval struct {
	From time.Time
	To   time.Time
	loc  *time.Location
}

// NewInterval normalizes both bounds to calendar days in loc. A nil loc means UTC.
func NewInterval(from, to time.Time, loc *time.Location) (Interval, error) {
	if loc == nil {
		loc = time.UTC
	}
	i := Interval{From: dayOf(from, loc), To: dayOf(to, loc), loc: loc}
	if i.From.After(i.To) {
		return Interval{}, apperror.InvalidRange("to", "period end must not be before its start")
	}
	return i, nil
}

// Contains compares the calendar day of t with both bounds, inclusively.
func (i Interval) Contains(t time.Time) bool {
	d := dayOf(t, i.location())
	return !d.Before(i.From) && !d.After(i.To)
}

// Label renders "dd/MM/yyyy - dd/MM/yyyy".
func (i Interval) Label() string {
	return i.From.Format(LabelLayout) + " - " + i.To.Format(LabelLayout)
}

func (i Interval) location() *time.Location {
	if i.loc == nil {
		return time.UTC
	}
	return i.loc
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
