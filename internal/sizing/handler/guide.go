package handler

import (
	"net/http"

	"sizeguide-service/internal/config"
	"sizeguide-service/internal/utils"
)

type measuringTip struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type guideResponse struct {
	HowToMeasure []measuringTip `json:"howToMeasure"`
	FitTip       string         `json:"fitTip"`
	Support      string         `json:"support"`
}

var howToMeasure = []measuringTip{
	{Key: "bust", Title: "Bust", Icon: "◯", Description: "Measure around the fullest part of your bust, keeping the tape parallel to the floor."},
	{Key: "waist", Title: "Waist", Icon: "◇", Description: "Measure around your natural waistline, the narrowest part of your torso."},
	{Key: "hips", Title: "Hips", Icon: "△", Description: `Measure around the fullest part of your hips, approximately 8" below your waist.`},
}

const fitTip = "If you're between sizes, we recommend sizing up for a relaxed fit or sizing down for a more fitted silhouette."

// Guide serves the static copy shown next to the chart.
func Guide(cfg config.Config) http.HandlerFunc {
	resp := guideResponse{
		HowToMeasure: howToMeasure,
		FitTip:       fitTip,
		Support:      cfg.SupportEmail,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, resp)
	}
}
