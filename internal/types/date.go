package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// YearMonth is a month-granularity date ("2006-01"). Day components are
// ignored on display and normalized to the 1st when round-tripped through
// the persistence layer.
type YearMonth struct {
	time.Time
}

// NewYearMonth builds a YearMonth for the given year and month.
func NewYearMonth(year int, month time.Month) *YearMonth {
	return &YearMonth{Time: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

// ParseYearMonth parses "2006-01" (or a full "2006-01-02" date, whose day is
// dropped). An empty string yields nil rather than an error so that partially
// filled forms round-trip cleanly.
func ParseYearMonth(s string) (*YearMonth, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return &YearMonth{Time: t}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return NewYearMonth(t.Year(), t.Month()), nil
}

// String returns the storage form "2006-01", or "" for the zero value.
func (d *YearMonth) String() string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format("2006-01")
}

// Display returns the render form "Jan 2006", or "" for the zero value.
func (d *YearMonth) Display() string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format("Jan 2006")
}

// MarshalJSON implements json.Marshaler
func (d *YearMonth) MarshalJSON() ([]byte, error) {
	if d == nil || d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. A value that cannot be parsed
// is treated as absent rather than failing the whole record; malformed dates
// are an input condition, not an error.
func (d *YearMonth) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	// Trim quotes
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	parsed, err := ParseYearMonth(str)
	if err != nil {
		return nil
	}
	if parsed != nil {
		d.Time = parsed.Time
	}
	return nil
}

// Scan implements the Scanner interface
func (d *YearMonth) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan YearMonth")
	}
	// Day normalized to the 1st at month granularity
	d.Time = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return nil
}

// Value implements the Valuer interface
func (d *YearMonth) Value() (driver.Value, error) {
	if d == nil || d.IsZero() {
		return nil, nil
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}
