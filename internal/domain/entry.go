package domain

import (
	"errors"
	"time"
)

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrUnknownEntryType = errors.New("unknown entry type")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidWorkHours = errors.New("work hours must be set for work entries and only for them")
)

// DateLayout is the wire format of Entry.Date.
const DateLayout = "2006-01-02"

type EntryType string

const (
	EntryWork         EntryType = "work"
	EntryBusinessTrip EntryType = "business_trip"
	EntryVacation     EntryType = "vacation"
	EntrySickLeave    EntryType = "sick_leave"
)

// ParseEntryType maps a wire value onto one of the four entry types.
// Matching is exact: "WORK" or " work" are rejected.
func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case EntryWork, EntryBusinessTrip, EntryVacation, EntrySickLeave:
		return t, nil
	default:
		return "", ErrUnknownEntryType
	}
}

// ParseDate parses a YYYY-MM-DD calendar day in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ValidateWorkHours reports whether the presence of hours matches the entry type:
// work entries carry hours, every other type carries none. Zero counts as present.
func ValidateWorkHours(t EntryType, hours *float64) bool {
	if t == EntryWork {
		return hours != nil
	}
	return hours == nil
}

type Entry struct {
	ID        string
	UserID    string
	Date      time.Time
	Type      EntryType
	WorkHours *float64 // nil unless Type is EntryWork

	CreatedAt time.Time
	UpdatedAt time.Time
}
