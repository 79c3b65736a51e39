package arrears

import (
	"fmt"
	"time"
)

// Month identifies a calendar month without a day component.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth accepts "YYYY-MM" or a full date "YYYY-MM-DD", which is
// truncated to its month.
func ParseMonth(value string) (Month, error) {
	if len(value) > 7 {
		value = value[:7]
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", value, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf truncates a point in time to its calendar month.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Next returns the following calendar month, rolling December into
// January of the next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding calendar month, rolling January into
// December of the previous year.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) index() int {
	return m.Year*12 + int(m.Month) - 1
}

func (m Month) Before(other Month) bool {
	return m.index() < other.index()
}

func (m Month) After(other Month) bool {
	return m.index() > other.index()
}

// MonthsUntil counts the months in the inclusive range [m, other].
// Zero or negative when other precedes m.
func (m Month) MonthsUntil(other Month) int {
	return other.index() - m.index() + 1
}

// MarshalJSON renders the month as its "YYYY-MM" string form.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Month) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid month literal %s", string(data))
	}
	parsed, err := ParseMonth(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
