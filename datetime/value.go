package datetime

import (
	"time"
)

// Type names reported for temporal values.
const (
	TypeDateTime = "date-time"
	TypeDate     = "date"
	TypeTime     = "time"
	TypePeriod   = "period"
	TypeDuration = "duration"
)

// Kind returns the temporal type name of v, or "" when v is not temporal.
func Kind(v any) string {
	switch v.(type) {
	case time.Time, *time.Time:
		return TypeDateTime
	case Date, *Date:
		return TypeDate
	case Time, *Time:
		return TypeTime
	case Period, *Period:
		return TypePeriod
	case time.Duration:
		return TypeDuration
	}
	return ""
}

// Format renders a temporal value in its canonical string form. The boolean
// is false when v is not temporal.
func Format(v any) (string, bool) {
	switch t := v.(type) {
	case time.Time:
		return FormatDateTime(t), true
	case *time.Time:
		if t == nil {
			return "", false
		}
		return FormatDateTime(*t), true
	case Date:
		return t.String(), true
	case *Date:
		if t == nil {
			return "", false
		}
		return t.String(), true
	case Time:
		return t.String(), true
	case *Time:
		if t == nil {
			return "", false
		}
		return t.String(), true
	case Period:
		return t.String(), true
	case *Period:
		if t == nil {
			return "", false
		}
		return t.String(), true
	case time.Duration:
		return FormatDuration(t), true
	}
	return "", false
}
