package bikeshare

import (
	"crawshaw.io/sqlite/sqlitex"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Filters is a resolved city/month/day selection. Month and Day hold a
// lower-case name or All.
type Filters struct {
	City  string
	Month string
	Day   string
}

// MonthNumber is the 1-based month the filter keeps, or 0 for all months.
func (f Filters) MonthNumber() (int, error) {
	month := strings.ToLower(f.Month)
	if month == "" || month == All {
		return 0, nil
	}
	i := slices.Index(Months, month)
	if i == -1 {
		return 0, fmt.Errorf("%w: month %q", ErrInvalidInput, f.Month)
	}
	return i + 1, nil
}

func (f Filters) dayName() (string, error) {
	day := strings.ToLower(f.Day)
	if day == "" || day == All {
		return "", nil
	}
	if !slices.Contains(Days, day) {
		return "", fmt.Errorf("%w: day %q", ErrInvalidInput, f.Day)
	}
	return day, nil
}

// Filter drops every staged trip that does not match the month and day
// filters. Filtering by all/all leaves the dataset untouched.
func (d *Dataset) Filter(f Filters) error {
	month, err := f.MonthNumber()
	if err != nil {
		return err
	}
	day, err := f.dayName()
	if err != nil {
		return err
	}

	before, err := d.Len()
	if err != nil {
		return err
	}

	if month != 0 {
		err = sqlitex.Exec(d.db, "DELETE FROM trips WHERE month != ?", sqlitexNoop, month)
		if err != nil {
			return err
		}
	}
	if day != "" {
		err = sqlitex.Exec(d.db, "DELETE FROM trips WHERE lower(day_of_week) != ?", sqlitexNoop, day)
		if err != nil {
			return err
		}
	}

	after, err := d.Len()
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("%d of %d trips match month=%s day=%s", after, before, f.Month, f.Day))
	return nil
}
