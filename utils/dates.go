// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

// BusinessLocation is the shop's fixed business-day offset (UTC-3). Day
// boundaries for reports and filters are always computed in this zone.
var BusinessLocation = time.FixedZone("UTC-3", -3*60*60)

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// BusinessDay returns the [start, end) bounds of the business day containing t.
func BusinessDay(t time.Time) (time.Time, time.Time) {
	start := BeginningOfDay(t.In(BusinessLocation))
	return start, start.AddDate(0, 0, 1)
}

// ParseBusinessDate parses a YYYY-MM-DD date as midnight in the business zone.
func ParseBusinessDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, BusinessLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
