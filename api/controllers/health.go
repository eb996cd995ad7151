package controllers

import (
	"net/http"

	"github.com/luisrmz-dev/vendoria-backend/api/responses"
	"github.com/luisrmz-dev/vendoria-backend/pkg/config"
	"github.com/luisrmz-dev/vendoria-backend/pkg/db"
	pkgerrors "github.com/luisrmz-dev/vendoria-backend/pkg/errors"
	"github.com/luisrmz-dev/vendoria-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Vendoria-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the database answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Vendoria-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
