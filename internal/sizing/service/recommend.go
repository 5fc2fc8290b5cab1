package service

import (
	"math"

	"sizeguide-service/internal/sizing/model"
)

type axis struct {
	value *float64 // inches
	rng   func(model.SizeEntry) model.Range
}

// Recommend picks the entry whose range midpoints sit closest to the supplied
// measurements. The score of an entry is the mean absolute deviation over the
// measurements actually given, so a missing one neither helps nor hurts.
// Ties keep the earlier entry. There is no distance cutoff.
func Recommend(chart model.Chart, m model.Measurements) model.Recommendation {
	if m.Empty() {
		return model.Recommendation{Outcome: model.OutcomeNoInput}
	}

	axes := []axis{
		{inInches(m.Bust, m.Unit), func(e model.SizeEntry) model.Range { return e.Bust }},
		{inInches(m.Waist, m.Unit), func(e model.SizeEntry) model.Range { return e.Waist }},
		{inInches(m.Hips, m.Unit), func(e model.SizeEntry) model.Range { return e.Hips }},
	}

	best := model.Recommendation{Outcome: model.OutcomeNoMatch}
	for _, e := range chart.Entries {
		score, n := scoreEntry(e, axes)
		if n == 0 {
			continue
		}
		if best.Outcome != model.OutcomeMatched || score < best.Score {
			best = model.Recommendation{
				Outcome:  model.OutcomeMatched,
				Label:    e.Label,
				Score:    score,
				Compared: n,
			}
		}
	}
	return best
}

func scoreEntry(e model.SizeEntry, axes []axis) (float64, int) {
	sum, n := 0.0, 0
	for _, a := range axes {
		if a.value == nil {
			continue
		}
		sum += math.Abs(*a.value - a.rng(e).Mid())
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
