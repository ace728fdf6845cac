package services

import (
	"errors"
	"time"
)

var ErrEntryDateRequired = errors.New("entry date is required")
var ErrInvalidEntryDate = errors.New("invalid entry date")

const entryDateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseEntryDate accepts a calendar date in ISO 8601 form (2006-01-02)
// and pins it to midnight in the given location.
func ParseEntryDate(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrEntryDateRequired
	}
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(entryDateLayout, raw, location)
	if err != nil {
		return time.Time{}, ErrInvalidEntryDate
	}
	return DateAtLocation(parsed, location), nil
}

func FormatEntryDate(value time.Time) string {
	return value.Format(entryDateLayout)
}
