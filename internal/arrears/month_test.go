package arrears

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-01")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.January}, m)

	m, err = ParseMonth("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.July}, m)

	_, err = ParseMonth("")
	assert.Error(t, err)

	_, err = ParseMonth("2024-13")
	assert.Error(t, err)

	_, err = ParseMonth("next month")
	assert.Error(t, err)
}

func TestMonthYearRollover(t *testing.T) {
	dec := Month{Year: 2023, Month: time.December}
	jan := dec.Next()
	assert.Equal(t, Month{Year: 2024, Month: time.January}, jan)
	assert.Equal(t, dec, jan.Prev())
}

func TestMonthsUntil(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}
	mar := Month{Year: 2024, Month: time.March}
	assert.Equal(t, 3, jan.MonthsUntil(mar))
	assert.Equal(t, 1, jan.MonthsUntil(jan))
	assert.Equal(t, 13, jan.MonthsUntil(Month{Year: 2025, Month: time.January}))
	assert.LessOrEqual(t, mar.MonthsUntil(jan), 0)
}

func TestMonthJSONRoundTrip(t *testing.T) {
	m := Month{Year: 2024, Month: time.September}
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-09"`, string(data))

	var out Month
	require.NoError(t, out.UnmarshalJSON(data))
	assert.Equal(t, m, out)

	assert.Error(t, out.UnmarshalJSON([]byte(`42`)))
}
