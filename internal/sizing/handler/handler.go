package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"sizeguide-service/internal/config"
	"sizeguide-service/internal/sizing/model"
	"sizeguide-service/internal/sizing/service"
	"sizeguide-service/internal/utils"
)

type recommendRequest struct {
	Bust  measurementField `json:"bust"`
	Waist measurementField `json:"waist"`
	Hips  measurementField `json:"hips"`
	Unit  string           `json:"unit"`
}

type recommendResponse struct {
	Outcome  model.Outcome  `json:"outcome"`
	Size     model.Label    `json:"size,omitempty"`
	Score    *float64       `json:"score,omitempty"`
	Compared int            `json:"compared"`
	Unit     model.Unit     `json:"unit"`
	Category string         `json:"category"`
	Row      *model.RowView `json:"row,omitempty"` // the recommended row, formatted in unit
}

// Recommend serves POST /recommend and POST /charts/{category}/recommend.
// Body is JSON or form fields bust, waist, hips, unit. "Nothing to match" is a
// normal 200 with outcome no_input.
func Recommend(cfg config.Config, reg *service.Registry, logger zerolog.Logger) http.HandlerFunc {
	defUnit, err := service.ParseUnit(cfg.DefaultUnit, model.Inches)
	if err != nil {
		defUnit = model.Inches
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, logger)

		req, err := decodeRecommend(r)
		if err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		unit, err := service.ParseUnit(req.Unit, defUnit)
		if err != nil {
			_ = utils.WriteError(w, statusFor(err), err.Error())
			return
		}
		chart, err := reg.Get(category(r))
		if err != nil {
			_ = utils.WriteError(w, statusFor(err), err.Error())
			return
		}

		rec := service.Recommend(chart, model.Measurements{
			Bust:  req.Bust.value(),
			Waist: req.Waist.value(),
			Hips:  req.Hips.value(),
			Unit:  unit,
		})

		resp := recommendResponse{
			Outcome:  rec.Outcome,
			Compared: rec.Compared,
			Unit:     unit,
			Category: chart.Category,
		}
		if rec.Found() {
			score := rec.Score
			resp.Size = rec.Label
			resp.Score = &score
			for _, row := range service.Table(chart, unit).Rows {
				if row.Label == rec.Label {
					resp.Row = &row
					break
				}
			}
		}

		if err := utils.WriteJSON(w, http.StatusOK, resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}
		log.Debug().
			Str("category", chart.Category).
			Str("unit", string(unit)).
			Str("outcome", string(rec.Outcome)).
			Str("size", string(rec.Label)).
			Int("compared", rec.Compared).
			Msg("recommend")
	}
}

func decodeRecommend(r *http.Request) (recommendRequest, error) {
	var req recommendRequest
	if isForm(r) {
		if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
			return req, err
		}
		req.Bust.raw = r.FormValue("bust")
		req.Waist.raw = r.FormValue("waist")
		req.Hips.raw = r.FormValue("hips")
		req.Unit = r.FormValue("unit")
		return req, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return req, err
	}
	if req.Unit == "" {
		req.Unit = r.URL.Query().Get("unit")
	}
	return req, nil
}
