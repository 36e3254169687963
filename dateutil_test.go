package iso8583

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate10RollsBackOneYearAcrossNewYear(t *testing.T) {
	now := time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC)
	// December 31 with no year, parsed on January 3rd: naively placing it in
	// the current year (2026-12-31) would be ~11 months in the future, so it
	// must roll back to the prior year — the transaction actually happened
	// just before the New Year.
	d, err := ParseDate10("1231235900", now)
	require.NoError(t, err)
	require.Equal(t, 2025, d.Year())
	require.Equal(t, time.December, d.Month())
	require.Equal(t, 31, d.Day())
}

func TestDate10RollsBackWhenMoreThanSixMonthsAhead(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	// A transaction dated in August, parsed on a January clock: naively
	// placing it in the current year would be ~7 months in the future, so
	// it must roll back to the prior year.
	d, err := ParseDate10("0815120000", now)
	require.NoError(t, err)
	require.Equal(t, 2025, d.Year())
	require.Equal(t, time.August, d.Month())
}

func TestDate4RoundTrip(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	d, err := ParseDate4("0615", now)
	require.NoError(t, err)
	require.Equal(t, "0615", FormatDate4(d))
}

func TestDateExpPinsCentury(t *testing.T) {
	d, err := ParseDateExp("2812")
	require.NoError(t, err)
	require.Equal(t, 2028, d.Year())
	require.Equal(t, time.December, d.Month())
	require.Equal(t, "2812", FormatDateExp(d))
}

func TestTimeRoundTrip(t *testing.T) {
	tm, err := ParseTime("235901")
	require.NoError(t, err)
	require.Equal(t, "235901", FormatTime(tm))
}
