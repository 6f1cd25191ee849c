package bikeshare

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
)

// validateHeader checks that every required trip column is present and
// returns the column names to stage under, in file order.
func validateHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	for i, column := range header {
		column = strings.TrimSpace(column)
		if column == "" {
			column = fmt.Sprintf("column_%d", i+1)
		}
		if slices.Contains(derivedColumns, column) {
			return nil, fmt.Errorf("%w: column %q clashes with a derived column", ErrInvalidInput, column)
		}
		columns[i] = column
	}

	var missing []string
	for column, schema := range tripSchema {
		if !schema.Required {
			continue
		}
		if !slices.Contains(columns, column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	for column, schema := range tripSchema {
		if !schema.Required && !slices.Contains(columns, column) {
			slog.Info(fmt.Sprintf("Optional column %s (%s) not present", column, schema.TypeDescription))
		}
	}
	return columns, nil
}
