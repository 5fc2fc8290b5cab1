package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizeguide-service/internal/fileio"
	"sizeguide-service/internal/sizing/service"
)

func TestMeasurementField(t *testing.T) {
	var req recommendRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bust": 35.5, "waist": "28,5", "hips": null, "unit": "in"}`), &req))

	if v := req.Bust.value(); assert.NotNil(t, v) {
		assert.Equal(t, 35.5, *v)
	}
	if v := req.Waist.value(); assert.NotNil(t, v) {
		assert.Equal(t, 28.5, *v)
	}
	assert.Nil(t, req.Hips.value())

	require.NoError(t, json.Unmarshal([]byte(`{"bust": {"x": 1}, "waist": false, "hips": "wide"}`), &req))
	assert.Nil(t, req.Bust.value())
	assert.Nil(t, req.Waist.value())
	assert.Nil(t, req.Hips.value())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(errors.Wrap(service.ErrUnknownCategory, "hats")))
	assert.Equal(t, http.StatusBadRequest, statusFor(errors.Wrap(service.ErrInvalidUnit, "mm")))
	assert.Equal(t, http.StatusBadRequest, statusFor(errors.Wrap(service.ErrInvalidChart, "short")))
	assert.Equal(t, http.StatusBadRequest, statusFor(fileio.ErrUnsupported))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("disk")))
}

func TestAtoi(t *testing.T) {
	assert.Equal(t, 3, atoi("3", 1))
	assert.Equal(t, 1, atoi("", 1))
	assert.Equal(t, 1, atoi("three", 1))
}
