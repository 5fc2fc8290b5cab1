// Package agegate keeps the one persisted flag of the size guide: whether the
// visitor confirmed they are old enough to browse. It lives in a cookie on the
// visitor's side; the server stores nothing.
package agegate

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"sizeguide-service/internal/middleware"
	"sizeguide-service/internal/utils"
)

const CookieName = "ageVerified"

// the flag has no expiry in the storefront; a cookie needs one, so make it long
const cookieMaxAge = 10 * 365 * 24 * time.Hour

type statusResponse struct {
	Verified bool   `json:"verified"`
	Redirect string `json:"redirect,omitempty"`
}

type confirmRequest struct {
	Confirmed *bool `json:"confirmed"`
}

// Verified reports whether the request carries the confirmation cookie.
func Verified(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	return err == nil && c.Value == "true"
}

func Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, statusResponse{Verified: Verified(r)})
	}
}

// Confirm records the visitor's answer. A refusal is not stored; the client is
// sent to rejectURL instead.
func Confirm(rejectURL string, secure bool, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Confirmed == nil {
			_ = utils.WriteError(w, http.StatusBadRequest, `body must be {"confirmed": true|false}`)
			return
		}

		if !*req.Confirmed {
			logger.Debug().Str("rid", middleware.GetRequestID(r)).Msg("age gate rejected")
			_ = utils.WriteJSON(w, http.StatusForbidden, statusResponse{Verified: false, Redirect: rejectURL})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "true",
			Path:     "/",
			MaxAge:   int(cookieMaxAge / time.Second),
			Expires:  time.Now().Add(cookieMaxAge),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
		_ = utils.WriteJSON(w, http.StatusOK, statusResponse{Verified: true})
	}
}
