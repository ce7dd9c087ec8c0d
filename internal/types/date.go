package types

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	ierr "github.com/flexprice/prorata/internal/errors"
)

// DateLayout is the ISO-8601 calendar date layout accepted and emitted by the API.
const DateLayout = "2006-01-02"

const hoursPerDay = 24

// CalendarDate is a date normalized to UTC midnight. The zero value is not a valid date.
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate builds a date from its parts. Out of range parts roll over the
// same way time.Date does; use ParseCalendarDate for strict input.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NormalizeUTC truncates t to midnight of its UTC calendar day.
func NormalizeUTC(t time.Time) CalendarDate {
	u := t.UTC()
	return NewCalendarDate(u.Year(), u.Month(), u.Day())
}

// ParseCalendarDate accepts YYYY-MM-DD or an RFC3339 timestamp. Timestamps are
// interpreted in UTC, never in the server's local zone.
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CalendarDate{}, ierr.NewError("activation date is required").
			WithHint("Activation date must be a calendar date in YYYY-MM-DD format").
			Mark(ierr.ErrInvalidDate)
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return NormalizeUTC(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return CalendarDate{}, ierr.WithError(err).
			WithHintf("Invalid activation date %q, expected YYYY-MM-DD", s).
			WithReportableDetails(map[string]any{
				"provided_value": s,
			}).
			Mark(ierr.ErrInvalidDate)
	}
	return NormalizeUTC(t), nil
}

func (d CalendarDate) Year() int { return d.t.Year() }
func (d CalendarDate) Month() time.Month { return d.t.Month() }
func (d CalendarDate) Day() int { return d.t.Day() }
func (d CalendarDate) Time() time.Time { return d.t }
func (d CalendarDate) IsZero() bool { return d.t.IsZero() }
func (d CalendarDate) Equal(o CalendarDate) bool { return d.t.Equal(o.t) }

func (d CalendarDate) String() string {
	return d.t.Format(DateLayout)
}

// FormatDMY renders the date as DD-MM-YYYY, the layout used in customer scripts.
func (d CalendarDate) FormatDMY() string {
	return d.t.Format("02-01-2006")
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ierr.WithError(err).
			WithHint("Date must be a string in YYYY-MM-DD format").
			Mark(ierr.ErrInvalidDate)
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth returns the last day of the given month.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay pins day into [1, DaysInMonth(year, month)].
func ClampDay(year int, month time.Month, day int) int {
	last := DaysInMonth(year, month)
	if day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

// AddMonths moves d by months (may be negative), clamping the day to the target month.
func AddMonths(d CalendarDate, months int) CalendarDate {
	return AddMonthsKeepDay(d, months, d.Day())
}

// AddMonthsKeepDay moves d by months and then clamps keepDay, rather than d's own
// day, into the target month. Anchor dates use this so that an anchor of 31 comes
// back to the 31st after passing through February.
func AddMonthsKeepDay(d CalendarDate, months int, keepDay int) CalendarDate {
	// normalize on the first of the month so time.Date never overflows the day
	first := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := ClampDay(first.Year(), first.Month(), keepDay)
	return NewCalendarDate(first.Year(), first.Month(), day)
}

// DaysBetween returns the whole number of days from a to b (b - a).
func DaysBetween(a, b CalendarDate) int {
	return int(math.Round(b.t.Sub(a.t).Hours() / hoursPerDay))
}
