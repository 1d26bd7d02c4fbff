package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestZones(t *testing.T) Zones {
	t.Helper()
	zones, err := LoadZones()
	require.NoError(t, err)
	return zones
}

func TestZonesFormat(t *testing.T) {
	zones := loadTestZones(t)

	tests := []struct {
		name     string
		start    string
		expected LocalTimes
	}{
		{
			name:     "northern summer",
			start:    "2024-06-06T18:00:00+00:00",
			expected: LocalTimes{UTC: "Jun 06 18:00", EST: "Jun 06 14:00", PST: "Jun 06 11:00", NZL: "Jun 07 06:00"},
		},
		{
			name:     "northern winter",
			start:    "2024-01-15T18:00:00Z",
			expected: LocalTimes{UTC: "Jan 15 18:00", EST: "Jan 15 13:00", PST: "Jan 15 10:00", NZL: "Jan 16 07:00"},
		},
		{
			name:     "offset input",
			start:    "2024-06-06T21:00:00+03:00",
			expected: LocalTimes{UTC: "Jun 06 18:00", EST: "Jun 06 14:00", PST: "Jun 06 11:00", NZL: "Jun 07 06:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseStart(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, zones.Format(start))
		})
	}
}

func TestZonesFormat_MatchesIndependentConversion(t *testing.T) {
	zones := loadTestZones(t)
	start := time.Date(2024, 6, 6, 18, 0, 0, 0, time.UTC)

	for name, got := range map[string]string{
		ZoneEastern:  zones.Format(start).EST,
		ZonePacific:  zones.Format(start).PST,
		ZoneAuckland: zones.Format(start).NZL,
	} {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		assert.Equal(t, start.In(loc).Format(DisplayLayout), got, name)
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Title: "past", Start: now.Add(-time.Second)},
		{Title: "exactly now", Start: now},
		{Title: "same instant other offset", Start: now.In(time.FixedZone("+03", 3*3600))},
		{Title: "future", Start: now.Add(time.Hour)},
	}

	got := Upcoming(events, now)

	require.Len(t, got, 3)
	assert.Equal(t, "exactly now", got[0].Title)
	assert.Equal(t, "same instant other offset", got[1].Title)
	assert.Equal(t, "future", got[2].Title)
	for _, e := range got {
		assert.False(t, e.Start.Before(now))
	}
	assert.Len(t, events, 4, "input must not be modified")
}

func TestLocalize_ReturnsCopies(t *testing.T) {
	zones := loadTestZones(t)
	events := []Event{{Title: "a", Start: time.Date(2024, 6, 6, 18, 0, 0, 0, time.UTC)}}

	got := Localize(events, zones)

	require.Len(t, got, 1)
	assert.True(t, got[0].Localized())
	assert.Equal(t, "Jun 06 18:00", got[0].Times.UTC)
	assert.False(t, events[0].Localized())
}
