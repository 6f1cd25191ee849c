package bikeshare

import (
	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const WindowSize = 5

// Window is the row range [First, Last) over every staged column except the
// last one.
type Window struct {
	First   int
	Last    int
	Columns []string
	Rows    [][]string
}

// Window reads rows [first, last). Ranges past the end give fewer or no
// rows rather than an error.
func (d *Dataset) Window(first, last int) (Window, error) {
	if first < 0 || last < first {
		panic(fmt.Sprintf("invalid window [%d, %d)", first, last))
	}

	columns := d.columns[:len(d.columns)-1]
	var names []string
	for _, column := range columns {
		names = append(names, quoteIdent(column))
	}
	query := fmt.Sprintf("SELECT %s FROM trips ORDER BY rowid LIMIT ? OFFSET ?", strings.Join(names, ", "))

	w := Window{First: first, Last: last, Columns: columns}
	err := sqlitex.Exec(d.db, query, func(stmt *sqlite.Stmt) error {
		row := make([]string, len(columns))
		for i := range columns {
			row[i] = stmt.ColumnText(i)
		}
		w.Rows = append(w.Rows, row)
		return nil
	}, last-first, first)
	if err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Render() string {
	if len(w.Rows) == 0 {
		return fmt.Sprintf("No trips in rows %d to %d.", w.First, w.Last)
	}
	headers := append([]string{""}, w.Columns...)
	rows := make([][]string, len(w.Rows))
	for i, row := range w.Rows {
		rows[i] = append([]string{fmt.Sprint(w.First + i)}, row...)
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

type pagerState int

const (
	pagerAskShow pagerState = iota
	pagerAskMore
	pagerDone
)

// Pager shows WindowSize rows at a time for as long as the user keeps
// answering yes.
type Pager struct {
	ds     *Dataset
	prompt *Prompter
	out    io.Writer

	state pagerState
	first int
}

func NewPager(ds *Dataset, prompt *Prompter, out io.Writer) *Pager {
	return &Pager{ds: ds, prompt: prompt, out: out}
}

// Current is the window the pager shows next.
func (p *Pager) Current() (first, last int) {
	return p.first, p.first + WindowSize
}

func (p *Pager) Run() error {
	for p.state != pagerDone {
		if err := p.step(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pager) step() error {
	var question string
	switch p.state {
	case pagerAskShow:
		question = "\nWould you like to view individual trip data? Type 'yes' or 'no'.\n"
	case pagerAskMore:
		question = "\nWould you like to view more individual trip data? Type 'yes' or 'no'.\n"
	default:
		return nil
	}

	yes, err := p.prompt.YesNo(question)
	if err != nil {
		return err
	}
	if !yes {
		p.state = pagerDone
		return nil
	}

	if p.state == pagerAskMore {
		p.first += WindowSize
	}
	p.state = pagerAskMore

	w, err := p.ds.Window(p.Current())
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, w.Render())
	return nil
}
