package bikeshare

import (
	"errors"
	"math"
	"slices"
)

var (
	ErrNoTrips      = errors.New("no trips match the filters")
	ErrNoBirthYears = errors.New("no birth years recorded")
)

// frequencies counts values in first-seen order.
type frequencies[T comparable] struct {
	order  []T
	counts map[T]int
}

func newFrequencies[T comparable]() *frequencies[T] {
	return &frequencies[T]{counts: make(map[T]int)}
}

func (f *frequencies[T]) add(v T) {
	if _, ok := f.counts[v]; !ok {
		f.order = append(f.order, v)
	}
	f.counts[v]++
}

// mode returns the most frequent value. Ties go to the value seen first.
func (f *frequencies[T]) mode() (T, bool) {
	var best T
	bestCount := 0
	for _, v := range f.order {
		if f.counts[v] > bestCount {
			best, bestCount = v, f.counts[v]
		}
	}
	return best, bestCount > 0
}

// sorted returns counts in descending order, stable on first appearance.
func (f *frequencies[T]) sorted() []Count[T] {
	out := make([]Count[T], 0, len(f.order))
	for _, v := range f.order {
		out = append(out, Count[T]{Value: v, N: f.counts[v]})
	}
	slices.SortStableFunc(out, func(a, b Count[T]) int {
		return b.N - a.N
	})
	return out
}

type Count[T comparable] struct {
	Value T
	N     int
}

func modeOf[T comparable](trips []Trip, key func(Trip) T) T {
	f := newFrequencies[T]()
	for _, t := range trips {
		f.add(key(t))
	}
	v, _ := f.mode()
	return v
}

type TimeSummary struct {
	Month   int
	Weekday int // Monday=0
	Hour    int
}

func TimeStats(trips []Trip) (TimeSummary, error) {
	if len(trips) == 0 {
		return TimeSummary{}, ErrNoTrips
	}
	return TimeSummary{
		Month:   modeOf(trips, func(t Trip) int { return t.Month }),
		Weekday: modeOf(trips, func(t Trip) int { return t.Weekday }),
		Hour:    modeOf(trips, func(t Trip) int { return t.Hour }),
	}, nil
}

type StationSummary struct {
	StartStation string
	EndStation   string
	Trip         string
}

func StationStats(trips []Trip) (StationSummary, error) {
	if len(trips) == 0 {
		return StationSummary{}, ErrNoTrips
	}
	return StationSummary{
		StartStation: modeOf(trips, func(t Trip) string { return t.StartStation }),
		EndStation:   modeOf(trips, func(t Trip) string { return t.EndStation }),
		Trip:         modeOf(trips, Trip.Label),
	}, nil
}

// HMS is a duration split by integer division by 60, twice. Seconds keeps
// any fractional part so that Hours*3600+Minutes*60+Seconds is exact.
type HMS struct {
	Hours   int64
	Minutes int64
	Seconds float64
}

func SplitSeconds(total float64) HMS {
	minutes := math.Floor(total / 60)
	seconds := total - minutes*60
	hours := math.Floor(minutes / 60)
	return HMS{
		Hours:   int64(hours),
		Minutes: int64(minutes - hours*60),
		Seconds: seconds,
	}
}

func (h HMS) TotalSeconds() float64 {
	return float64(h.Hours)*3600 + float64(h.Minutes)*60 + h.Seconds
}

type DurationSummary struct {
	Total float64
	Mean  float64
}

func (s DurationSummary) TotalHMS() HMS { return SplitSeconds(s.Total) }
func (s DurationSummary) MeanHMS() HMS  { return SplitSeconds(s.Mean) }

func DurationStats(trips []Trip) (DurationSummary, error) {
	if len(trips) == 0 {
		return DurationSummary{}, ErrNoTrips
	}
	var total float64
	for _, t := range trips {
		total += t.Duration
	}
	return DurationSummary{Total: total, Mean: total / float64(len(trips))}, nil
}

// UserStats counts trips per user type, most common first. Blank user types
// are not counted.
func UserStats(trips []Trip) []Count[string] {
	f := newFrequencies[string]()
	for _, t := range trips {
		if t.UserType != "" {
			f.add(t.UserType)
		}
	}
	return f.sorted()
}

type DemographicSummary struct {
	Genders         []Count[string]
	EarliestBirth   int
	LatestBirth     int
	MostCommonBirth int
}

func DemographicStats(trips []Trip) (DemographicSummary, error) {
	if len(trips) == 0 {
		return DemographicSummary{}, ErrNoTrips
	}

	genders := newFrequencies[string]()
	years := newFrequencies[float64]()
	earliest, latest := math.Inf(1), math.Inf(-1)
	for _, t := range trips {
		if t.Gender != "" {
			genders.add(t.Gender)
		}
		if t.HasBirthYear {
			years.add(t.BirthYear)
			earliest = math.Min(earliest, t.BirthYear)
			latest = math.Max(latest, t.BirthYear)
		}
	}

	common, ok := years.mode()
	if !ok {
		return DemographicSummary{}, ErrNoBirthYears
	}
	return DemographicSummary{
		Genders:         genders.sorted(),
		EarliestBirth:   int(earliest),
		LatestBirth:     int(latest),
		MostCommonBirth: int(common),
	}, nil
}
