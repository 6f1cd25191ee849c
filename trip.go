package bikeshare

import (
	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"fmt"
	"strconv"
	"time"
)

type Trip struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	UserType     string

	// Empty when the source has no Gender column or the cell is blank.
	Gender       string
	BirthYear    float64
	HasBirthYear bool

	Month   int
	Weekday int // Monday=0
	Hour    int
}

func (t Trip) Label() string {
	return tripLabel(t.StartStation, t.EndStation)
}

// Trips decodes the remaining staged rows in file order.
func (d *Dataset) Trips() ([]Trip, error) {
	var trips []Trip
	err := sqlitex.Exec(d.db, "SELECT rowid, * FROM trips ORDER BY rowid", func(stmt *sqlite.Stmt) error {
		trip, err := decodeTrip(stmt)
		if err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrMalformedRow, stmt.GetInt64("rowid"), err)
		}
		trips = append(trips, trip)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func decodeTrip(stmt *sqlite.Stmt) (Trip, error) {
	startTime, err := parseStartTime(stmt.GetText(colStartTime))
	if err != nil {
		return Trip{}, err
	}
	duration, err := strconv.ParseFloat(stmt.GetText(colTripDuration), 64)
	if err != nil {
		return Trip{}, err
	}

	trip := Trip{
		StartTime:    startTime,
		StartStation: stmt.GetText(colStartStation),
		EndStation:   stmt.GetText(colEndStation),
		Duration:     duration,
		UserType:     stmt.GetText(colUserType),
		Gender:       stmt.GetText(colGender),
		Month:        int(stmt.GetInt64(colMonth)),
		Weekday:      int(stmt.GetInt64(colWeekday)),
		Hour:         int(stmt.GetInt64(colHour)),
	}

	if v := stmt.GetText(colBirthYear); v != "" {
		trip.BirthYear, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return Trip{}, err
		}
		trip.HasBirthYear = true
	}
	return trip, nil
}
