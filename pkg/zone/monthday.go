package zone

import (
	"fmt"
	"time"
)

// MonthDay is a calendar date with no year component, the form frost
// dates are recorded in ("05-15").
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses an "MM-DD" string.
func ParseMonthDay(s string) (MonthDay, error) {
	var m, d int
	if _, err := fmt.Sscanf(s, "%2d-%2d", &m, &d); err != nil {
		return MonthDay{}, fmt.Errorf("zone: bad month-day %q: %w", s, err)
	}
	md := MonthDay{Month: time.Month(m), Day: d}
	if !md.Valid() {
		return MonthDay{}, fmt.Errorf("zone: bad month-day %q", s)
	}
	return md, nil
}

// Valid checks the month-day against a non-leap reference year, so
// "02-29" is rejected the same way every year.
func (md MonthDay) Valid() bool {
	if md.Month < time.January || md.Month > time.December || md.Day < 1 {
		return false
	}
	t := md.InYear(2025)
	return t.Month() == md.Month && t.Day() == md.Day
}

// InYear anchors the month-day in a concrete year at midnight UTC.
func (md MonthDay) InYear(year int) time.Time {
	return time.Date(year, md.Month, md.Day, 0, 0, 0, 0, time.UTC)
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}
