// Package datetime provides the temporal value types of the graph and their
// canonical string forms.
package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned by the Parse functions.
var ErrInvalidFormat = errors.New("datetime: invalid format")

// Date is a calendar date without time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date part of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a date", ErrInvalidFormat, s)
	}
	return DateOf(t), nil
}

// Time is a wall clock time without date or zone.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOf returns the clock part of t.
func TimeOf(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
		s += "." + frac
	}
	return s
}

// ParseTime parses HH:MM:SS with optional fraction.
func ParseTime(s string) (Time, error) {
	t, err := time.Parse("15:04:05.999999999", s)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q is not a time", ErrInvalidFormat, s)
	}
	return TimeOf(t), nil
}

// FormatDateTime renders t as RFC 3339 keeping its offset; UTC renders as Z.
// Trailing zero fractions are dropped.
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseDateTime accepts RFC 3339 with or without fraction.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, fmt.Errorf("%w: %q is not an RFC 3339 date-time", ErrInvalidFormat, s)
	}
	return t, nil
}

// Period is a calendar based ISO 8601 duration.
type Period struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// String renders the period as ISO 8601 (P1Y2M3DT4H5M6S). The zero period
// is P0D.
func (p Period) String() string {
	var b strings.Builder
	b.WriteByte('P')
	writePart(&b, p.Years, 'Y')
	writePart(&b, p.Months, 'M')
	writePart(&b, p.Days, 'D')
	if p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 {
		b.WriteByte('T')
		writePart(&b, p.Hours, 'H')
		writePart(&b, p.Minutes, 'M')
		writePart(&b, p.Seconds, 'S')
	}
	if b.Len() == 1 {
		return "P0D"
	}
	return b.String()
}

func writePart(b *strings.Builder, n int, unit byte) {
	if n == 0 {
		return
	}
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(unit)
}

// ParsePeriod parses an ISO 8601 duration with integer components.
// Weeks (PnW) are converted to days.
func ParsePeriod(s string) (Period, error) {
	bad := fmt.Errorf("%w: %q is not an ISO 8601 period", ErrInvalidFormat, s)
	if len(s) < 3 || s[0] != 'P' {
		return Period{}, bad
	}
	var p Period
	inTime := false
	num := ""
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
			continue
		case r == 'T':
			if inTime || num != "" {
				return Period{}, bad
			}
			inTime = true
			continue
		}
		if num == "" {
			return Period{}, bad
		}
		n, _ := strconv.Atoi(num)
		num = ""
		switch {
		case !inTime && r == 'Y':
			p.Years = n
		case !inTime && r == 'M':
			p.Months = n
		case !inTime && r == 'W':
			p.Days += n * 7
		case !inTime && r == 'D':
			p.Days += n
		case inTime && r == 'H':
			p.Hours = n
		case inTime && r == 'M':
			p.Minutes = n
		case inTime && r == 'S':
			p.Seconds = n
		default:
			return Period{}, bad
		}
	}
	if num != "" {
		return Period{}, bad
	}
	return p, nil
}

// PeriodOf splits a duration into hours, minutes and seconds.
func PeriodOf(d time.Duration) Period {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	return Period{Hours: h, Minutes: m, Seconds: int(d / time.Second)}
}

// FormatDuration renders d as an ISO 8601 duration (PT1H30M). Sub-second
// parts are rounded.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + PeriodOf(-d).String()
	}
	s := PeriodOf(d).String()
	if s == "P0D" {
		return "PT0S"
	}
	return s
}
