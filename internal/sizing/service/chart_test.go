package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizeguide-service/internal/sizing/model"
)

func TestDefaultChartIsValid(t *testing.T) {
	t.Parallel()

	chart := DefaultChart()
	require.NoError(t, Validate(chart))
	for i, e := range chart.Entries {
		assert.Equal(t, model.Labels[i], e.Label)
	}
}

func TestDefaultChartIsACopy(t *testing.T) {
	t.Parallel()

	a := DefaultChart()
	a.Entries[0].Bust.Low = 99
	assert.Equal(t, 31.0, DefaultChart().Entries[0].Bust.Low)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *model.Chart)
	}{
		{"missing size", func(c *model.Chart) { c.Entries = c.Entries[:5] }},
		{"extra size", func(c *model.Chart) { c.Entries = append(c.Entries, c.Entries[5]) }},
		{"wrong order", func(c *model.Chart) { c.Entries[0], c.Entries[1] = c.Entries[1], c.Entries[0] }},
		{"duplicate label", func(c *model.Chart) { c.Entries[1].Label = model.XS }},
		{"inverted range", func(c *model.Chart) { c.Entries[2].Waist = model.Range{Low: 30, High: 28} }},
		{"NaN bound", func(c *model.Chart) { c.Entries[3].Hips.High = math.NaN() }},
		{"negative scalar", func(c *model.Chart) { c.Entries[4].Length = -1 }},
		{"infinite scalar", func(c *model.Chart) { c.Entries[4].Shoulders = math.Inf(1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := DefaultChart()
			tc.mutate(&c)
			assert.ErrorIs(t, Validate(c), ErrInvalidChart)
		})
	}
}

func TestParseLabel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]model.Label{
		"xs":     model.XS,
		" M ":    model.M,
		"x l":    model.XL,
		"2xl":    model.XXL,
		"Medium": model.M,
	} {
		got, ok := ParseLabel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseLabel("XXXL")
	assert.False(t, ok)
}

func TestSortEntries(t *testing.T) {
	t.Parallel()

	c := DefaultChart()
	c.Entries[0], c.Entries[5] = c.Entries[5], c.Entries[0]
	c.Entries[2], c.Entries[3] = c.Entries[3], c.Entries[2]
	SortEntries(c.Entries)
	assert.Equal(t, DefaultChart().Entries, c.Entries)
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	c, err := NormalizeCategory(" Dresses ")
	require.NoError(t, err)
	assert.Equal(t, "dresses", c)

	for _, bad := range []string{"", "../etc", "a b", "-x"} {
		_, err := NormalizeCategory(bad)
		assert.ErrorIs(t, err, ErrUnknownCategory, bad)
	}
}
