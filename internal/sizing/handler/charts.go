package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"sizeguide-service/internal/config"
	"sizeguide-service/internal/sizing/model"
	"sizeguide-service/internal/sizing/service"
	"sizeguide-service/internal/utils"
)

type chartsResponse struct {
	Categories []string `json:"categories"`
	Default    string   `json:"default"`
}

func ListCharts(reg *service.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, chartsResponse{
			Categories: reg.Categories(),
			Default:    service.DefaultCategory,
		})
	}
}

// GetChart returns the chart formatted for ?unit=in|cm.
func GetChart(cfg config.Config, reg *service.Registry) http.HandlerFunc {
	defUnit, err := service.ParseUnit(cfg.DefaultUnit, model.Inches)
	if err != nil {
		defUnit = model.Inches
	}
	return func(w http.ResponseWriter, r *http.Request) {
		unit, err := service.ParseUnit(r.URL.Query().Get("unit"), defUnit)
		if err != nil {
			_ = utils.WriteError(w, statusFor(err), err.Error())
			return
		}
		chart, err := reg.Get(category(r))
		if err != nil {
			_ = utils.WriteError(w, statusFor(err), err.Error())
			return
		}
		_ = utils.WriteJSON(w, http.StatusOK, service.Table(chart, unit))
	}
}

// PutChart replaces the chart of a category with an uploaded file
// (multipart field "file", optional "header_row"). The URL names the category.
func PutChart(cfg config.Config, reg *service.Registry, logger zerolog.Logger) http.HandlerFunc {
	maxMem := int64(cfg.MaxUploadMB) << 20
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, logger)
		defer r.Body.Close()

		cat, err := service.NormalizeCategory(category(r))
		if err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := r.ParseMultipartForm(maxMem); err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		chart, err := service.LoadChart(file, service.ChartSource{
			Filename:  header.Filename,
			Category:  cat,
			HeaderRow: atoi(r.FormValue("header_row"), 1),
		})
		if err != nil {
			log.Warn().Err(err).Str("category", cat).Str("file", header.Filename).Msg("chart rejected")
			_ = utils.WriteError(w, statusFor(err), err.Error())
			return
		}
		chart.Category = cat
		if err := reg.Put(chart); err != nil {
			_ = utils.WriteError(w, statusFor(err), err.Error())
			return
		}

		log.Info().Str("category", cat).Str("file", header.Filename).Msg("chart replaced")
		_ = utils.WriteJSON(w, http.StatusOK, service.Table(chart, model.Inches))
	}
}
