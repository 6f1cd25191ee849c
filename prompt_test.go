package bikeshare

import (
	"bytes"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

func init() {
	color.NoColor = true
}

func TestPromptFilters(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("boston\nChicago\nJuly\njanuary\nfunday\n  ALL \n"), &out)

	f, err := p.Filters()
	require.NoError(t, err)
	assert.Equal(t, Filters{City: "chicago", Month: "january", Day: "all"}, f)

	assert.Contains(t, out.String(), "We do not have data on that city")
	assert.Contains(t, out.String(), "We only have data for the first six months")
	assert.Contains(t, out.String(), "Your answer does not match any of the above options")
	assert.True(t, strings.HasSuffix(out.String(), separator+"\n"))
}

func TestPromptFiltersEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("new york city\nmarch\n"), io.Discard)
	_, err := p.Filters()
	require.ErrorIs(t, err, io.EOF)
}

func TestPromptYesNo(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("maybe\nYES\nno\n"), &out)

	yes, err := p.YesNo("Continue?\n")
	require.NoError(t, err)
	assert.True(t, yes)
	assert.Equal(t, 2, strings.Count(out.String(), "Continue?"))

	yes, err = p.YesNo("Continue?\n")
	require.NoError(t, err)
	assert.False(t, yes)
}
