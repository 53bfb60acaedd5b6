package util

import (
	"errors"
	"strings"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts RFC3339 (with or without fractional seconds) or a bare
// YYYY-MM-DD. dateOnly reports which form matched; bare dates are UTC midnight.
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, ErrInvalidDate
	}
	if t, err = time.Parse(time.RFC3339Nano, s); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(DateFormat, s); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, ErrInvalidDate
}

func DateToStr(t time.Time) string {
	return t.Format(DateFormat)
}

func DateTimeToStr(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
