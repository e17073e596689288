package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded in JSON as "yyyy-MM-dd".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "yyyy-MM-dd" string. RFC 3339 timestamps are accepted too and truncated to the date.
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err == nil {
		return Date{Time: parsed}, nil
	}

	parsed, rfcErr := time.Parse(time.RFC3339, value)
	if rfcErr != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	return NewDate(parsed), nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
