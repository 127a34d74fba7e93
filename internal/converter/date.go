package converter

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate reads a calendar date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

func parseOptionalDate(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(*value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders t as a calendar date in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

func formatOptionalDate(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t, loc)
	return &s
}
