package cmd

import (
	"fmt"
	"strings"
	"time"
)

// dueFlagLayouts are the formats accepted by --due flags.
var dueFlagLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDueFlag parses a --due value. Blank means no due date.
func parseDueFlag(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dueFlagLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized due date %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// parseDayFlag parses a --date value into a calendar day.
func parseDayFlag(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("unrecognized date %q (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// parseMonthFlag parses a --month value. Blank means the current month.
func parseMonthFlag(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized month %q (expected YYYY-MM)", s)
	}
	return t, nil
}
