package bikeshare

import (
	"fmt"
	"io"
	"time"
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Reporter prints the statistics sections. Now is used for the timing line
// at the end of each section.
type Reporter struct {
	Out io.Writer
	Now func() time.Time
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out, Now: time.Now}
}

func (r *Reporter) section(title string, body func() error) error {
	boldColor.Fprintf(r.Out, "\n%s\n\n", title)
	start := r.Now()
	if err := body(); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "\nThis took %g seconds.\n", r.Now().Sub(start).Seconds())
	fmt.Fprintln(r.Out, separator)
	return nil
}

func (r *Reporter) label(name string, value any) {
	boldColor.Fprint(r.Out, name)
	fmt.Fprintln(r.Out, "", value)
}

// Report prints every section for trips. Demographics are only printed for
// cities whose source carries them.
func (r *Reporter) Report(city City, trips []Trip) error {
	if err := r.Time(trips); err != nil {
		return err
	}
	if err := r.Stations(trips); err != nil {
		return err
	}
	if err := r.Durations(trips); err != nil {
		return err
	}
	if err := r.Users(trips); err != nil {
		return err
	}
	if city.Demographics {
		return r.Demographics(trips)
	}
	return nil
}

func (r *Reporter) Time(trips []Trip) error {
	return r.section("Calculating the most frequent times of travel...", func() error {
		s, err := TimeStats(trips)
		if err != nil {
			return err
		}
		r.label("Most popular month:", fmt.Sprintf("%d (%s)", s.Month, time.Month(s.Month)))
		r.label("Most popular day:", fmt.Sprintf("%d (%s)", s.Weekday, weekdayNames[s.Weekday]))
		r.label("Most popular start hour:", s.Hour)
		return nil
	})
}

func (r *Reporter) Stations(trips []Trip) error {
	return r.section("Calculating the most popular stations and trip...", func() error {
		s, err := StationStats(trips)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "Most popular start station is %s.\n", s.StartStation)
		fmt.Fprintf(r.Out, "Most popular end station is %s.\n", s.EndStation)
		fmt.Fprintf(r.Out, "The most common trip is %s.\n", s.Trip)
		return nil
	})
}

func (r *Reporter) Durations(trips []Trip) error {
	return r.section("Calculating the statistics on the total and average trip durations...", func() error {
		s, err := DurationStats(trips)
		if err != nil {
			return err
		}
		total, mean := s.TotalHMS(), s.MeanHMS()
		fmt.Fprintf(r.Out, "The total travel time is %d hours, %d minutes and %g seconds.\n",
			total.Hours, total.Minutes, total.Seconds)
		fmt.Fprintf(r.Out, "The mean travel time is %d hours, %d minutes and %g seconds.\n",
			mean.Hours, mean.Minutes, mean.Seconds)
		return nil
	})
}

func (r *Reporter) Users(trips []Trip) error {
	return r.section("Calculating user stats...", func() error {
		fmt.Fprintln(r.Out, "User types:")
		for _, c := range UserStats(trips) {
			fmt.Fprintf(r.Out, "  %-12s %d\n", c.Value, c.N)
		}
		return nil
	})
}

func (r *Reporter) Demographics(trips []Trip) error {
	return r.section("Calculating gender and age stats...", func() error {
		s, err := DemographicStats(trips)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, "Gender:")
		for _, c := range s.Genders {
			fmt.Fprintf(r.Out, "  %-12s %d\n", c.Value, c.N)
		}
		fmt.Fprintf(r.Out, "\nThe oldest users were born in %d.\nThe youngest users were born in %d.\nMost users were born in %d.\n",
			s.EarliestBirth, s.LatestBirth, s.MostCommonBirth)
		return nil
	})
}
