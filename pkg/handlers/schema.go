package handlers

import (
	"encoding/json"
	"net/http"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/models"
)

func Tables(cfg *tenderchat.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := cfg.Introspector.TableNames(r.Context())
		if err != nil {
			cfg.Logger.Errorf("Unable to list tables: %s", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TablesResponse{Tables: names})
	}
}

func Schema(cfg *tenderchat.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		description, err := cfg.Introspector.Describe(r.Context())
		if err != nil {
			cfg.Logger.Errorf("Unable to introspect schema: %s", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SchemaResponse{Schema: description.String()})
	}
}
