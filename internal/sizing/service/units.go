package service

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"sizeguide-service/internal/sizing/model"
)

const cmPerInch = 2.54

var ErrInvalidUnit = errors.New("invalid unit")

// ToCentimeters converts for display: the result is rounded to a whole centimeter.
func ToCentimeters(inches float64) float64 {
	return math.Round(inches * cmPerInch)
}

// ToInches converts without rounding so scoring keeps full precision.
func ToInches(cm float64) float64 {
	return cm / cmPerInch
}

// ParseUnit accepts "in"/"cm" and a few spellings of both. Empty input gives def.
func ParseUnit(s string, def model.Unit) (model.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if def == "" {
			return model.Inches, nil
		}
		return def, nil
	case "in", "inch", "inches", `"`:
		return model.Inches, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres", "см":
		return model.Centimeters, nil
	default:
		return "", errors.Wrapf(ErrInvalidUnit, "%q", s)
	}
}

// inInches returns v converted from unit u, or nil when v is absent.
func inInches(v *float64, u model.Unit) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	out := *v
	if u == model.Centimeters {
		out = ToInches(out)
	}
	return &out
}
