package model

import "math"

type Unit string

const (
	Inches      Unit = "in"
	Centimeters Unit = "cm"
)

type Label string

const (
	XS  Label = "XS"
	S   Label = "S"
	M   Label = "M"
	L   Label = "L"
	XL  Label = "XL"
	XXL Label = "XXL"
)

// Labels lists every size in display order, smallest first.
var Labels = []Label{XS, S, M, L, XL, XXL}

// Range is a closed interval [Low, High] in inches.
type Range struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

func (r Range) Mid() float64 { return (r.Low + r.High) / 2 }

type SizeEntry struct {
	Label     Label   `json:"label"`
	Bust      Range   `json:"bust"`
	Waist     Range   `json:"waist"`
	Hips      Range   `json:"hips"`
	Shoulders float64 `json:"shoulders"`
	Length    float64 `json:"length"`
}

// Chart is one size table. Entries stay in Labels order; values are inches.
type Chart struct {
	Category string      `json:"category"`
	Entries  []SizeEntry `json:"entries"`
}

// Measurements are the optional body measurements of one request, in Unit.
// A nil or NaN field is absent.
type Measurements struct {
	Bust  *float64
	Waist *float64
	Hips  *float64
	Unit  Unit
}

func present(v *float64) bool { return v != nil && !math.IsNaN(*v) }

func (m Measurements) Empty() bool {
	return !present(m.Bust) && !present(m.Waist) && !present(m.Hips)
}

type Outcome string

const (
	OutcomeMatched Outcome = "matched"
	OutcomeNoInput Outcome = "no_input" // nothing to match
	OutcomeNoMatch Outcome = "no_match" // no entry could be scored
)

type Recommendation struct {
	Outcome  Outcome
	Label    Label
	Score    float64 // mean absolute deviation in inches
	Compared int     // measurements that took part in the score
}

func (r Recommendation) Found() bool { return r.Outcome == OutcomeMatched }

// RowView is a chart row formatted for one display unit.
type RowView struct {
	Label     Label     `json:"label"`
	Bust      string    `json:"bust"`
	Waist     string    `json:"waist"`
	Hips      string    `json:"hips"`
	Shoulders string    `json:"shoulders"`
	Length    string    `json:"length"`
	Raw       SizeEntry `json:"raw"`
}

type TableView struct {
	Category string    `json:"category"`
	Unit     Unit      `json:"unit"`
	Rows     []RowView `json:"rows"`
}
