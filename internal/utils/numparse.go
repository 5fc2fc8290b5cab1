package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// trailing unit marks people type into measurement boxes: 35", 35 in, 90cm
var rxUnitSuffix = regexp.MustCompile(`(?i)\s*(?:"|''|in|inch|inches|cm)\.?$`)

var spaces = strings.NewReplacer(" ", "", "\u00A0", "", "\u202F", "", "\u2009", "", "\t", "")

// ParseNumber parses "35.5", "35,5", "1 234,5" (NBSP/NNBSP), `35"` and "90 cm".
// The second result is false for empty or malformed input and for NaN/Inf.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = rxUnitSuffix.ReplaceAllString(s, "")
	s = spaces.Replace(s)
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			// 1,234.5
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseOptional is ParseNumber returning nil for anything unparseable.
func ParseOptional(s string) *float64 {
	f, ok := ParseNumber(s)
	if !ok {
		return nil
	}
	return &f
}
