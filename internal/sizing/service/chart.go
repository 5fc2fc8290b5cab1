package service

import (
	"math"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"sizeguide-service/internal/sizing/model"
)

const DefaultCategory = "default"

var (
	ErrInvalidChart    = errors.New("invalid size chart")
	ErrUnknownCategory = errors.New("unknown category")
)

var rxCategory = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// DefaultChart returns a fresh copy of the built-in women's tops chart.
func DefaultChart() model.Chart {
	return model.Chart{
		Category: DefaultCategory,
		Entries: []model.SizeEntry{
			{Label: model.XS, Bust: model.Range{Low: 31, High: 32}, Waist: model.Range{Low: 24, High: 25}, Hips: model.Range{Low: 34, High: 35}, Shoulders: 14.5, Length: 25},
			{Label: model.S, Bust: model.Range{Low: 33, High: 34}, Waist: model.Range{Low: 26, High: 27}, Hips: model.Range{Low: 36, High: 37}, Shoulders: 15, Length: 25.5},
			{Label: model.M, Bust: model.Range{Low: 35, High: 36}, Waist: model.Range{Low: 28, High: 29}, Hips: model.Range{Low: 38, High: 39}, Shoulders: 15.5, Length: 26},
			{Label: model.L, Bust: model.Range{Low: 37, High: 39}, Waist: model.Range{Low: 30, High: 32}, Hips: model.Range{Low: 40, High: 42}, Shoulders: 16, Length: 26.5},
			{Label: model.XL, Bust: model.Range{Low: 40, High: 42}, Waist: model.Range{Low: 33, High: 35}, Hips: model.Range{Low: 43, High: 45}, Shoulders: 16.5, Length: 27},
			{Label: model.XXL, Bust: model.Range{Low: 43, High: 45}, Waist: model.Range{Low: 36, High: 38}, Hips: model.Range{Low: 46, High: 48}, Shoulders: 17, Length: 27.5},
		},
	}
}

// NormalizeCategory lowercases and checks a category name.
func NormalizeCategory(s string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	if !rxCategory.MatchString(c) {
		return "", errors.Wrapf(ErrUnknownCategory, "bad category name %q", s)
	}
	return c, nil
}

var labelAliases = map[string]model.Label{
	"2XL":        model.XXL,
	"EXTRASMALL": model.XS,
	"SMALL":      model.S,
	"MEDIUM":     model.M,
	"LARGE":      model.L,
	"EXTRALARGE": model.XL,
}

// ParseLabel maps "xs", "2XL", "Medium" and similar spellings onto the fixed label set.
func ParseLabel(s string) (model.Label, bool) {
	l := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if alias, ok := labelAliases[l]; ok {
		return alias, true
	}
	return lo.Find(model.Labels, func(x model.Label) bool { return string(x) == l })
}

// SortEntries orders entries by the label display order. Unknown labels go last.
func SortEntries(entries []model.SizeEntry) {
	rank := func(l model.Label) int {
		if i := lo.IndexOf(model.Labels, l); i >= 0 {
			return i
		}
		return len(model.Labels)
	}
	// six rows; insertion sort keeps it stable
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && rank(entries[j].Label) < rank(entries[j-1].Label); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

// Validate checks the table is total: every label once, in order, with sane numbers.
func Validate(chart model.Chart) error {
	if len(chart.Entries) != len(model.Labels) {
		return errors.Wrapf(ErrInvalidChart, "want %d sizes, got %d", len(model.Labels), len(chart.Entries))
	}
	for i, e := range chart.Entries {
		if e.Label != model.Labels[i] {
			return errors.Wrapf(ErrInvalidChart, "row %d: want size %s, got %q", i+1, model.Labels[i], e.Label)
		}
		for _, ax := range []struct {
			name string
			r    model.Range
		}{{"bust", e.Bust}, {"waist", e.Waist}, {"hips", e.Hips}} {
			name, r := ax.name, ax.r
			if !finite(r.Low) || !finite(r.High) {
				return errors.Wrapf(ErrInvalidChart, "%s %s: range must be finite and non-negative", e.Label, name)
			}
			if r.Low > r.High {
				return errors.Wrapf(ErrInvalidChart, "%s %s: low %s above high %s", e.Label, name, num(r.Low), num(r.High))
			}
		}
		if !finite(e.Shoulders) || !finite(e.Length) {
			return errors.Wrapf(ErrInvalidChart, "%s: shoulders and length must be finite and non-negative", e.Label)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 }

func cloneChart(c model.Chart) model.Chart {
	out := c
	out.Entries = append([]model.SizeEntry(nil), c.Entries...)
	return out
}
