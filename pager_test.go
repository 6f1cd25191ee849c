package bikeshare

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

func TestWindow(t *testing.T) {
	ds := testLoad(t, "chicago.csv")

	w, err := ds.Window(0, 5)
	require.NoError(t, err)
	require.Len(t, w.Rows, 5)
	assert.NotContains(t, w.Columns, colTrip)
	assert.Contains(t, w.Columns, colHour)
	assert.Equal(t, "1001", w.Rows[0][0])
	assert.Equal(t, "1005", w.Rows[4][0])

	w, err = ds.Window(5, 10)
	require.NoError(t, err)
	require.Len(t, w.Rows, 3)
	assert.Equal(t, "1006", w.Rows[0][0])

	w, err = ds.Window(100, 105)
	require.NoError(t, err)
	assert.Empty(t, w.Rows)
	assert.Contains(t, w.Render(), "No trips")
}

func TestWindowRender(t *testing.T) {
	ds := testLoad(t, "washington.csv")

	w, err := ds.Window(0, 5)
	require.NoError(t, err)
	rendered := w.Render()
	assert.Contains(t, rendered, "Start Station")
	assert.Contains(t, rendered, "Washington Blvd & 10th St N, Clarendon")
	assert.Contains(t, rendered, "665458")
	assert.NotContains(t, rendered, "15th & K St NW to")
}

func TestWindowAfterFilter(t *testing.T) {
	ds := testLoad(t, "chicago.csv")
	require.NoError(t, ds.Filter(Filters{City: "chicago", Month: "june", Day: All}))

	w, err := ds.Window(0, 5)
	require.NoError(t, err)
	require.Len(t, w.Rows, 2)
	assert.Equal(t, "1006", w.Rows[0][0])
	assert.Equal(t, "1007", w.Rows[1][0])
}

func TestPager(t *testing.T) {
	cases := []struct {
		input       string
		first, last int
		shown       []string
		hidden      []string
	}{
		{"no\n", 0, 5, nil, []string{"1001"}},
		{"yes\nno\n", 0, 5, []string{"1001", "1005"}, []string{"1006"}},
		{"yes\nyes\nno\n", 5, 10, []string{"1001", "1008"}, nil},
		{"maybe\nyes\nyes\nyes\nno\n", 10, 15, []string{"No trips in rows 10 to 15"}, nil},
	}
	for _, c := range cases {
		t.Run(strings.ReplaceAll(c.input, "\n", ","), func(t *testing.T) {
			ds := testLoad(t, "chicago.csv")
			var out bytes.Buffer
			p := NewPager(ds, NewPrompter(strings.NewReader(c.input), &out), &out)

			require.NoError(t, p.Run())
			first, last := p.Current()
			assert.Equal(t, c.first, first)
			assert.Equal(t, c.last, last)
			for _, s := range c.shown {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range c.hidden {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestPagerEOF(t *testing.T) {
	ds := testLoad(t, "chicago.csv")
	p := NewPager(ds, NewPrompter(strings.NewReader("yes\n"), io.Discard), io.Discard)
	require.ErrorIs(t, p.Run(), io.EOF)
}
