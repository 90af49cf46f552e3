package datetime_test

import (
	"testing"
	"time"

	"github.com/reoring/datagraph/datetime"
)

func TestFormatDateTime_KeepsOffset(t *testing.T) {
	loc := time.FixedZone("", 3600)
	got := datetime.FormatDateTime(time.Date(2014, 1, 1, 12, 34, 47, 0, loc))
	if got != "2014-01-01T12:34:47+01:00" {
		t.Fatalf("want=2014-01-01T12:34:47+01:00 got=%s", got)
	}
	got = datetime.FormatDateTime(time.Date(2012, 3, 11, 13, 37, 21, 0, time.UTC))
	if got != "2012-03-11T13:37:21Z" {
		t.Fatalf("want=2012-03-11T13:37:21Z got=%s", got)
	}
}

func TestParseDateTime(t *testing.T) {
	v, err := datetime.ParseDateTime("2014-01-01T12:34:47+01:00")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if datetime.FormatDateTime(v) != "2014-01-01T12:34:47+01:00" {
		t.Fatalf("round trip failed: %s", datetime.FormatDateTime(v))
	}
	if _, err := datetime.ParseDateTime("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPeriod_StringAndParse(t *testing.T) {
	cases := map[string]datetime.Period{
		"P1Y2M3DT4H5M6S": {Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6},
		"P0D":            {},
		"PT30M":          {Minutes: 30},
		"P14D":           {Days: 14},
	}
	for s, p := range cases {
		if got := p.String(); got != s {
			t.Fatalf("want=%s got=%s", s, got)
		}
		back, err := datetime.ParsePeriod(s)
		if err != nil || back != p {
			t.Fatalf("parse %s: want=%+v got=%+v err=%v", s, p, back, err)
		}
	}
	if p, err := datetime.ParsePeriod("P2W"); err != nil || p.Days != 14 {
		t.Fatalf("weeks: got %+v err=%v", p, err)
	}
	for _, bad := range []string{"", "P", "1D", "PT", "P1X", "P1"} {
		if _, err := datetime.ParsePeriod(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := datetime.FormatDuration(90 * time.Minute); got != "PT1H30M" {
		t.Fatalf("want=PT1H30M got=%s", got)
	}
	if got := datetime.FormatDuration(0); got != "PT0S" {
		t.Fatalf("want=PT0S got=%s", got)
	}
}

func TestDateAndTime(t *testing.T) {
	d, err := datetime.ParseDate("2024-02-29")
	if err != nil || d.String() != "2024-02-29" {
		t.Fatalf("got %v err=%v", d, err)
	}
	tm, err := datetime.ParseTime("08:05:03")
	if err != nil || tm.String() != "08:05:03" {
		t.Fatalf("got %v err=%v", tm, err)
	}
	if datetime.Kind(d) != datetime.TypeDate || datetime.Kind(tm) != datetime.TypeTime || datetime.Kind("x") != "" {
		t.Fatalf("unexpected kinds")
	}
}
