package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	displayLayout = "Jan 02 2006"
)

// ParseDate accepts a calendar date in yyyy-mm-dd form.
func ParseDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	d, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, trimmed)
	}
	return d, nil
}

// FormatDate is the inverse of ParseDate.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

func DisplayDate(d time.Time) string {
	return d.Format(displayLayout)
}

// ParseDateRange parses both ends of an event and requires from <= to.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	start, err := ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", ErrEventRangeInverse, FormatDate(start), FormatDate(end))
	}
	return start, end, nil
}
