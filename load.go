package bikeshare

import (
	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

var stagingPragmas = map[string]string{
	"synchronous":  "OFF",
	"journal_mode": "OFF",
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Dataset is one city's trips staged in a private in-memory database. It is
// loaded once per run and discarded with Close.
type Dataset struct {
	db      *sqlite.Conn
	columns []string
}

func Load(inputPath string) (*Dataset, error) {
	if inputPath == "" {
		panic("Missing inputPath")
	}

	slog.Info(fmt.Sprintf("Loading %s", inputPath))

	inputF, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = inputF.Close() }()

	db, err := sqlite.OpenConn(":memory:", sqlite.SQLITE_OPEN_READWRITE|sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_NOMUTEX)
	if err != nil {
		return nil, err
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	for pragma, value := range stagingPragmas {
		err = sqlitex.Exec(db, "PRAGMA "+pragma+" = "+value, sqlitexNoop)
		if err != nil {
			return nil, err
		}
	}

	rowCount, err := stageTrips(db, inputF)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inputPath, err)
	}

	var columns []string
	err = sqlitex.Exec(db, "SELECT name FROM pragma_table_info(?)", func(stmt *sqlite.Stmt) error {
		columns = append(columns, stmt.GetText("name"))
		return nil
	}, "trips")
	if err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("Loaded %d trips from %s", rowCount, inputPath))

	ds := &Dataset{db: db, columns: columns}
	db = nil
	return ds, nil
}

// LoadCity loads the configured file for the chosen city and applies the
// month and day filters.
func LoadCity(cfg Config, filters Filters) (*Dataset, City, error) {
	city, ok := LookupCity(filters.City)
	if !ok {
		return nil, City{}, fmt.Errorf("%w: unknown city %q", ErrInvalidInput, filters.City)
	}

	ds, err := Load(cfg.CityPath(city))
	if err != nil {
		return nil, City{}, err
	}
	if err := ds.Filter(filters); err != nil {
		_ = ds.Close()
		return nil, City{}, err
	}
	return ds, city, nil
}

func stageTrips(db *sqlite.Conn, input io.Reader) (rowCount int, err error) {
	inputCSV := csv.NewReader(input)

	// Header

	header, err := inputCSV.Read()
	if err != nil {
		return 0, err
	}
	columns, err := validateHeader(header)
	if err != nil {
		return 0, err
	}
	slog.Info(fmt.Sprintf("Staging columns: %s", strings.Join(columns, ",")))

	startTimeI := slices.Index(columns, colStartTime)
	durationI := slices.Index(columns, colTripDuration)
	startStationI := slices.Index(columns, colStartStation)
	endStationI := slices.Index(columns, colEndStation)
	birthYearI := slices.Index(columns, colBirthYear)

	var columnFragments []string
	for _, column := range columns {
		columnFragments = append(columnFragments, quoteIdent(column)+" TEXT")
	}
	columnFragments = append(columnFragments,
		colMonth+" INTEGER", colDayOfWeek+" TEXT", colWeekday+" INTEGER", colHour+" INTEGER", colTrip+" TEXT")
	query := fmt.Sprintf("CREATE TABLE trips (%s)", strings.Join(columnFragments, ", "))
	if err := sqlitex.ExecTransient(db, query, sqlitexNoop); err != nil {
		return 0, err
	}

	var names []string
	var argFragments []string
	for i, column := range append(slices.Clone(columns), derivedColumns...) {
		names = append(names, quoteIdent(column))
		argFragments = append(argFragments, fmt.Sprintf("?%d", i+1))
	}
	query = fmt.Sprintf("INSERT INTO trips (%s) VALUES (%s)",
		strings.Join(names, ", "), strings.Join(argFragments, ", "))
	insertStmt, err := db.Prepare(query)
	if err != nil {
		return 0, err
	}

	release := sqlitex.Save(db)
	defer release(&err)

	// Rows

	inputCSV.FieldsPerRecord = -1 // Trailing empty cells are sometimes dropped

	for {
		row, err := inputCSV.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return rowCount, err
		}
		line, _ := inputCSV.FieldPos(0)

		if len(row) > len(columns) {
			return rowCount, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrMalformedRow, line, len(row), len(columns))
		}

		cell := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		startTime, err := parseStartTime(cell(startTimeI))
		if err != nil {
			return rowCount, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		if _, err := strconv.ParseFloat(cell(durationI), 64); err != nil {
			return rowCount, fmt.Errorf("%w: line %d: trip duration %q", ErrMalformedRow, line, cell(durationI))
		}
		if v := cell(birthYearI); v != "" {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return rowCount, fmt.Errorf("%w: line %d: birth year %q", ErrMalformedRow, line, v)
			}
		}

		if err := insertStmt.Reset(); err != nil {
			return rowCount, err
		}
		if err := insertStmt.ClearBindings(); err != nil {
			return rowCount, err
		}

		for i := range columns {
			param := i + 1
			if v := cell(i); v == "" {
				insertStmt.BindNull(param)
			} else {
				insertStmt.BindText(param, v)
			}
		}
		param := len(columns) + 1
		insertStmt.BindInt64(param, int64(startTime.Month()))
		insertStmt.BindText(param+1, startTime.Weekday().String())
		insertStmt.BindInt64(param+2, int64(weekdayIndex(startTime.Weekday())))
		insertStmt.BindInt64(param+3, int64(startTime.Hour()))
		insertStmt.BindText(param+4, tripLabel(cell(startStationI), cell(endStationI)))

		for {
			rowReturned, err := insertStmt.Step()
			if err != nil {
				return rowCount, err
			}
			if !rowReturned {
				break
			}
		}

		rowCount++
	}

	return rowCount, nil
}

func parseStartTime(v string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", v)
}

// weekdayIndex numbers days from Monday=0, unlike time.Weekday.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func tripLabel(start, end string) string {
	return start + " to " + end
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func sqlitexNoop(*sqlite.Stmt) error {
	return nil
}

// Columns lists the staged columns in table order, derived columns last.
func (d *Dataset) Columns() []string {
	return slices.Clone(d.columns)
}

func (d *Dataset) Len() (int, error) {
	var count int64
	err := sqlitex.Exec(d.db, "SELECT count(*) AS count FROM trips", func(stmt *sqlite.Stmt) error {
		count = stmt.GetInt64("count")
		return nil
	})
	return int(count), err
}

func (d *Dataset) Close() error {
	return d.db.Close()
}
