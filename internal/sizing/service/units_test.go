package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizeguide-service/internal/sizing/model"
)

func TestToCentimeters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 79.0, ToCentimeters(31))
	assert.Equal(t, 81.0, ToCentimeters(32))
	assert.Equal(t, 37.0, ToCentimeters(14.5))
	assert.Equal(t, 65.0, ToCentimeters(25.5))
	assert.Equal(t, 0.0, ToCentimeters(0))
}

func TestToInchesKeepsPrecision(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 10.629921, ToInches(27), 1e-6)
	assert.InDelta(t, 35.5, ToInches(90.17), 1e-9)
}

func TestRoundTripWithinHalfCentimeter(t *testing.T) {
	t.Parallel()

	const limit = 0.5/cmPerInch + 1e-9
	for x := 0.0; x <= 60; x += 0.05 {
		got := ToInches(ToCentimeters(x))
		require.LessOrEqualf(t, math.Abs(got-x), limit, "x=%v", x)
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		def     model.Unit
		want    model.Unit
		wantErr bool
	}{
		{"in", model.Centimeters, model.Inches, false},
		{" CM ", model.Inches, model.Centimeters, false},
		{"inches", "", model.Inches, false},
		{"centimetres", "", model.Centimeters, false},
		{"", model.Centimeters, model.Centimeters, false},
		{"", "", model.Inches, false},
		{"mm", model.Inches, "", true},
	}

	for _, tc := range tests {
		got, err := ParseUnit(tc.in, tc.def)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidUnit, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
