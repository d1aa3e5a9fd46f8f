package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the "Month Day, Year" form shown everywhere a date is displayed.
const DisplayLayout = "January 2, 2006"

// ISOLayout is accepted as input in addition to the display form.
const ISOLayout = "2006-01-02"

// Month name (full or abbreviated), day and year, with an optional comma.
var displayDateRegex = regexp.MustCompile(`^(?i)([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{1,4})$`)

// ParseStart parses a start date in display or ISO form. Days past the end
// of the month roll over into the next one ("February 31, 2026" is March 3),
// so every confirmed picker selection parses.
func ParseStart(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date: %w", ErrInvalidDate)
	}
	if t, err := time.Parse(ISOLayout, s); err == nil {
		return t, nil
	}

	m := displayDateRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	month, ok := lookupMonth(m[1])
	if !ok {
		return time.Time{}, fmt.Errorf("%q: unknown month: %w", s, ErrInvalidDate)
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if day < 1 || day > 31 || year < 1 {
		return time.Time{}, fmt.Errorf("%q: out of range: %w", s, ErrInvalidDate)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// EndDate derives the inclusive end of a program of the given number of
// weeks: start + weeks*7 - 1 days. It returns "" when start does not parse
// or weeks is not positive.
func EndDate(start string, weeks int) string {
	end, err := EndTime(start, weeks)
	if err != nil {
		return ""
	}
	return Format(end)
}

// EndTime is EndDate without the formatting.
func EndTime(start string, weeks int) (time.Time, error) {
	if weeks < 1 {
		return time.Time{}, fmt.Errorf("%d: %w", weeks, ErrInvalidWeeks)
	}
	t, err := ParseStart(start)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, weeks*7-1), nil
}

// Format renders t in DisplayLayout.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

func lookupMonth(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || (len(name) >= 3 && strings.HasPrefix(full, name)) {
			return m, true
		}
	}
	return 0, false
}
