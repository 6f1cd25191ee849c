package bikeshare

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
)

var (
	boldColor = color.New(color.Bold)
	hintColor = color.New(color.FgYellow)
)

const separator = "----------------------------------------"

// Prompter asks questions on out and reads one answer per line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the next answer, trimmed and lower-cased.
// It returns io.EOF once input is exhausted.
func (p *Prompter) ask(question string) (string, error) {
	boldColor.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}

// choose repeats question until the answer is one of allowed.
func (p *Prompter) choose(question, hint string, allowed []string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if slices.Contains(allowed, answer) {
			return answer, nil
		}
		hintColor.Fprintln(p.out, hint)
	}
}

func (p *Prompter) YesNo(question string) (bool, error) {
	answer, err := p.choose(question, "Please type 'yes' or 'no'.", []string{"yes", "no"})
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// Filters asks for a city, a month and a day until each is valid.
func (p *Prompter) Filters() (Filters, error) {
	boldColor.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	var cityNames []string
	for _, c := range Cities {
		cityNames = append(cityNames, c.Name)
	}

	city, err := p.choose(
		"\nWhich city would you like to see data on? Chicago, New York City, Washington?\n",
		"We do not have data on that city, please choose one of the three cities listed.",
		cityNames)
	if err != nil {
		return Filters{}, err
	}

	month, err := p.choose(
		"Would you like to search by one of the following months? January, February, March, April, May, June, or all? ",
		"We only have data for the first six months, please choose one of the listed months, or choose all.",
		append([]string{All}, Months...))
	if err != nil {
		return Filters{}, err
	}

	day, err := p.choose(
		"\nWould you like to search by one of the following days?\nMonday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, or all of them?\n",
		"Your answer does not match any of the above options, please try again!\n",
		append([]string{All}, Days...))
	if err != nil {
		return Filters{}, err
	}

	fmt.Fprintln(p.out, separator)
	return Filters{City: city, Month: month, Day: day}, nil
}
