package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"sizeguide-service/internal/fileio"
	"sizeguide-service/internal/middleware"
	"sizeguide-service/internal/sizing/service"
	"sizeguide-service/internal/utils"
)

// measurementField takes whatever the widget sends: 35.5, "35.5", "35,5", "" or null.
// It keeps the raw text; parsing happens later so a bad value becomes "absent".
type measurementField struct {
	raw string
}

func (m *measurementField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		m.raw = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &m.raw)
	}
	// numbers and anything else: keep the literal, ParseNumber decides
	m.raw = string(b)
	return nil
}

func (m measurementField) value() *float64 { return utils.ParseOptional(m.raw) }

// requestLogger binds the request id to the logger
func requestLogger(r *http.Request, logger zerolog.Logger) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("rid", rid).Logger()
	}
	return logger
}

func category(r *http.Request) string {
	if c := chi.URLParam(r, "category"); c != "" {
		return c
	}
	return service.DefaultCategory
}

// statusFor maps service errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownCategory):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidUnit),
		errors.Is(err, service.ErrInvalidChart),
		errors.Is(err, fileio.ErrUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isForm(r *http.Request) bool {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
