package istdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// IST is a fixed +05:30 offset. India has no daylight-saving transitions,
// so a fixed zone is equivalent to a timezone-database lookup here.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var (
	ErrUnparseableDate = errors.New("unparseable date value")
	ErrUnparseableTime = errors.New("unparseable time value, use HH:MM")
)

const (
	layoutISO     = "2006-01-02"
	layoutDisplay = "02-01-2006"
)

// Date is a canonical IST calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// ISO formats the date as YYYY-MM-DD, the form the store keeps internally.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display formats the date as DD-MM-YYYY, the form the availability and
// create endpoints expect.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// Time returns midnight of the date in IST.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, IST)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// FromTime extracts the IST calendar date from an instant.
func FromTime(t time.Time) Date {
	ist := t.In(IST)
	return Date{Year: ist.Year(), Month: ist.Month(), Day: ist.Day()}
}

// NowIST returns the current instant in IST.
func NowIST() time.Time {
	return time.Now().In(IST)
}

// Today returns the current IST calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// Parse accepts the two wire layouts (YYYY-MM-DD and DD-MM-YYYY, each
// optionally followed by a space-separated time component) as well as
// ISO-8601 datetimes.
//
// Bare dates are taken as the named calendar date with no timezone shift,
// so a date-only value never slides a day across the UTC boundary. Values
// that carry an actual instant are shifted into IST before the calendar
// date is extracted.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrUnparseableDate
	}

	// ISO-8601 datetimes carry an instant.
	if strings.ContainsRune(s, 'T') {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if t, err := time.Parse(layout, s); err == nil {
				return FromTime(t), nil
			}
		}
		return Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
	}

	// Wire layouts may trail a time component after a space; only the
	// calendar part matters.
	datePart := s
	if i := strings.IndexByte(s, ' '); i > 0 {
		datePart = s[:i]
	}

	for _, layout := range []string{layoutISO, layoutDisplay} {
		if t, err := time.Parse(layout, datePart); err == nil {
			return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}

// Normalize converts any supported date representation to a canonical IST
// calendar date. Supported inputs: time.Time, Date, and the string forms
// accepted by Parse.
func Normalize(v interface{}) (Date, error) {
	switch x := v.(type) {
	case nil:
		return Date{}, ErrUnparseableDate
	case Date:
		return x, nil
	case time.Time:
		if x.IsZero() {
			return Date{}, ErrUnparseableDate
		}
		return FromTime(x), nil
	case string:
		return Parse(x)
	default:
		return Date{}, fmt.Errorf("%w: unsupported type %T", ErrUnparseableDate, v)
	}
}

// FormatTimeToDisplay converts a 24-hour "HH:MM" string to "hh:mm AM/PM".
// Midnight maps to 12 AM and noon to 12 PM.
func FormatTimeToDisplay(hhmm string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableTime, hhmm)
	}
	return t.Format("03:04 PM"), nil
}
