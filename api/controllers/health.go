package controllers

import (
	"net/http"

	"github.com/stitchandstory/shop-backend/api/responses"
	"github.com/stitchandstory/shop-backend/pkg/config"
	"github.com/stitchandstory/shop-backend/pkg/instance"
)

type healthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// Health reports liveness and process uptime in seconds.
func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg != nil {
			w.Header().Set("X-StitchStory-Env", cfg.App.Env)
		}
		responses.WriteJSON(w, http.StatusOK, healthResponse{
			Status: "ok",
			Uptime: instance.Uptime().Seconds(),
		})
	}
}
