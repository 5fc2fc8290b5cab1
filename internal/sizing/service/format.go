package service

import (
	"fmt"
	"strconv"

	"sizeguide-service/internal/sizing/model"
)

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// FormatValue renders a scalar inch value: 14.5" or 37 cm.
func FormatValue(v float64, u model.Unit) string {
	if u == model.Centimeters {
		return fmt.Sprintf("%s cm", num(ToCentimeters(v)))
	}
	return num(v) + `"`
}

// FormatRange renders an inch range: 31" - 32" or 79 - 81 cm.
func FormatRange(r model.Range, u model.Unit) string {
	if u == model.Centimeters {
		return fmt.Sprintf("%s - %s cm", num(ToCentimeters(r.Low)), num(ToCentimeters(r.High)))
	}
	return fmt.Sprintf(`%s" - %s"`, num(r.Low), num(r.High))
}

// Table formats the whole chart for display in u.
func Table(chart model.Chart, u model.Unit) model.TableView {
	rows := make([]model.RowView, 0, len(chart.Entries))
	for _, e := range chart.Entries {
		rows = append(rows, model.RowView{
			Label:     e.Label,
			Bust:      FormatRange(e.Bust, u),
			Waist:     FormatRange(e.Waist, u),
			Hips:      FormatRange(e.Hips, u),
			Shoulders: FormatValue(e.Shoulders, u),
			Length:    FormatValue(e.Length, u),
			Raw:       e,
		})
	}
	return model.TableView{Category: chart.Category, Unit: u, Rows: rows}
}
