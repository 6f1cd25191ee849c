package bikeshare

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Session is the interactive loop: choose filters, report, page raw rows,
// and optionally start over.
type Session struct {
	Config   Config
	Prompt   *Prompter
	Reporter *Reporter
	Out      io.Writer
}

func NewSession(cfg Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		Config:   cfg,
		Prompt:   NewPrompter(in, out),
		Reporter: NewReporter(out),
		Out:      out,
	}
}

// Run loops until the user declines to restart. Running out of input ends
// the session with io.EOF.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runOnce(); err != nil {
			return err
		}

		restart, err := s.Prompt.YesNo("\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (s *Session) runOnce() error {
	filters, err := s.Prompt.Filters()
	if err != nil {
		return err
	}

	ds, city, err := LoadCity(s.Config, filters)
	if err != nil {
		return err
	}
	defer func() { _ = ds.Close() }()

	trips, err := ds.Trips()
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Reporting on %d %s trips", len(trips), city.Name))

	if err := s.Reporter.Report(city, trips); err != nil {
		return fmt.Errorf("%s (month=%s, day=%s): %w", city.Name, filters.Month, filters.Day, err)
	}

	return NewPager(ds, s.Prompt, s.Out).Run()
}
