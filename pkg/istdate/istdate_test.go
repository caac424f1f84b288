package istdate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayRoundTrip(t *testing.T) {
	inputs := []string{
		"01-01-2024",
		"15-03-2024",
		"29-02-2024", // leap day
		"31-12-1999",
		"09-11-2025",
	}

	for _, in := range inputs {
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, d.Display())
	}
}

func TestParseDisplayRoundTripExhaustiveYear(t *testing.T) {
	// Every calendar day of a leap year survives the round trip.
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		in := day.Format("02-01-2006")
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, d.Display())
		day = day.AddDate(0, 0, 1)
	}
}

func TestParseISODateNoShift(t *testing.T) {
	// A bare calendar date must never slide a day, whatever the host zone.
	d, err := Parse("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 15}, d)
	assert.Equal(t, "15-03-2024", d.Display())
	assert.Equal(t, "2024-03-15", d.ISO())
}

func TestParseTrailingTimeIgnored(t *testing.T) {
	for _, in := range []string{"2024-03-15 10:30", "15-03-2024 23:59:00"} {
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, "15-03-2024", d.Display())
	}
}

func TestParseInstantShiftsToIST(t *testing.T) {
	// 2024-03-15T20:00Z is already 2024-03-16 01:30 in IST.
	d, err := Parse("2024-03-15T20:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "16-03-2024", d.Display())

	// 2024-03-15T18:29Z is still 2024-03-15 23:59 in IST.
	d, err = Parse("2024-03-15T18:29:00Z")
	require.NoError(t, err)
	assert.Equal(t, "15-03-2024", d.Display())
}

func TestNormalizeTime(t *testing.T) {
	utc := time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)
	d, err := Normalize(utc)
	require.NoError(t, err)
	assert.Equal(t, "16-03-2024", d.Display())
}

func TestNormalizeInvalid(t *testing.T) {
	cases := []interface{}{
		"",
		"not-a-date",
		"45-13-2024",
		"32-01-2024",
		"2024-13-01",
		"2024-02-30",
		"15/03/2024",
		nil,
		42,
		time.Time{},
	}
	for _, in := range cases {
		d, err := Normalize(in)
		assert.Error(t, err, fmt.Sprintf("%v", in))
		assert.True(t, d.IsZero(), fmt.Sprintf("%v", in))
	}
}

func TestDateOrdering(t *testing.T) {
	a, err := Parse("14-03-2024")
	require.NoError(t, err)
	b, err := Parse("15-03-2024")
	require.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.Equal(b))
}

func TestFormatTimeToDisplay(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:05": "12:05 AM",
		"01:00": "01:00 AM",
		"09:07": "09:07 AM",
		"11:59": "11:59 AM",
		"12:00": "12:00 PM",
		"13:05": "01:05 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range cases {
		got, err := FormatTimeToDisplay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestFormatTimeToDisplayInvalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "noon"} {
		_, err := FormatTimeToDisplay(in)
		assert.Error(t, err, in)
	}
}

func TestZeroDateFormatsEmpty(t *testing.T) {
	var d Date
	assert.Equal(t, "", d.Display())
	assert.Equal(t, "", d.ISO())
}
