package bikeshare

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestChicagoStats(t *testing.T) {
	trips, err := testLoad(t, "chicago.csv").Trips()
	require.NoError(t, err)

	times, err := TimeStats(trips)
	require.NoError(t, err)
	assert.Equal(t, TimeSummary{Month: 1, Weekday: 0, Hour: 8}, times)

	stations, err := StationStats(trips)
	require.NoError(t, err)
	// Clark St and Lake St both start three trips; Clark St is seen first.
	assert.Equal(t, StationSummary{
		StartStation: "Clark St",
		EndStation:   "Lake St",
		Trip:         "Clark St to Lake St",
	}, stations)

	durations, err := DurationStats(trips)
	require.NoError(t, err)
	assert.Equal(t, 7400.0, durations.Total)
	assert.Equal(t, 925.0, durations.Mean)
	assert.Equal(t, HMS{Hours: 2, Minutes: 3, Seconds: 20}, durations.TotalHMS())
	assert.Equal(t, HMS{Hours: 0, Minutes: 15, Seconds: 25}, durations.MeanHMS())

	assert.Equal(t, []Count[string]{{"Subscriber", 5}, {"Customer", 3}}, UserStats(trips))

	demographics, err := DemographicStats(trips)
	require.NoError(t, err)
	assert.Equal(t, DemographicSummary{
		Genders:         []Count[string]{{"Male", 3}, {"Female", 3}},
		EarliestBirth:   1972,
		LatestBirth:     1999,
		MostCommonBirth: 1985,
	}, demographics)
}

func TestWashingtonStats(t *testing.T) {
	trips, err := testLoad(t, "washington.csv").Trips()
	require.NoError(t, err)

	stations, err := StationStats(trips)
	require.NoError(t, err)
	assert.Equal(t, "14th & Belmont St NW", stations.StartStation)
	assert.Equal(t, "14th & Belmont St NW to 15th & K St NW", stations.Trip)

	durations, err := DurationStats(trips)
	require.NoError(t, err)
	total := durations.TotalHMS()
	assert.Equal(t, int64(1), total.Hours)
	assert.Equal(t, int64(17), total.Minutes)
	assert.InDelta(t, 19.066, total.Seconds, 1e-6)

	_, err = DemographicStats(trips)
	require.ErrorIs(t, err, ErrNoBirthYears)
}

func TestStatsEmpty(t *testing.T) {
	_, err := TimeStats(nil)
	require.ErrorIs(t, err, ErrNoTrips)
	_, err = StationStats(nil)
	require.ErrorIs(t, err, ErrNoTrips)
	_, err = DurationStats(nil)
	require.ErrorIs(t, err, ErrNoTrips)
	_, err = DemographicStats(nil)
	require.ErrorIs(t, err, ErrNoTrips)
	assert.Empty(t, UserStats(nil))
}

func TestModeFirstSeenWinsTies(t *testing.T) {
	trips := []Trip{
		{StartStation: "B", EndStation: "A", Hour: 9},
		{StartStation: "A", EndStation: "B", Hour: 7},
		{StartStation: "A", EndStation: "A", Hour: 7},
		{StartStation: "B", EndStation: "B", Hour: 9},
	}
	assert.Equal(t, "B", modeOf(trips, func(t Trip) string { return t.StartStation }))
	assert.Equal(t, "A", modeOf(trips, func(t Trip) string { return t.EndStation }))
	assert.Equal(t, 9, modeOf(trips, func(t Trip) int { return t.Hour }))
	assert.Equal(t, "B to A", modeOf(trips, Trip.Label))
}

func TestUserStatsOrder(t *testing.T) {
	trips := []Trip{
		{UserType: "Customer"},
		{UserType: "Subscriber"},
		{UserType: ""},
		{UserType: "Dependent"},
		{UserType: "Subscriber"},
		{UserType: "Dependent"},
	}
	assert.Equal(t, []Count[string]{{"Subscriber", 2}, {"Dependent", 2}, {"Customer", 1}}, UserStats(trips))
}

func TestSplitSeconds(t *testing.T) {
	for total := 0; total < 200000; total += 37 {
		hms := SplitSeconds(float64(total))
		require.Equal(t, float64(total), hms.TotalSeconds(), "total %d", total)
		require.Less(t, hms.Minutes, int64(60))
		require.Less(t, hms.Seconds, 60.0)
		require.Equal(t, int64(total/3600), hms.Hours)
	}

	assert.Equal(t, HMS{Hours: 1, Minutes: 2, Seconds: 5.5}, SplitSeconds(3725.5))
}
