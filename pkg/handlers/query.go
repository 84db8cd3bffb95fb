package handlers

import (
	"encoding/json"
	"net/http"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/metrics"
	"github.com/tendly/tenderchat/pkg/models"
	"github.com/tendly/tenderchat/pkg/query"
)

// Query executes a user-supplied statement verbatim. It sits behind the
// authorization middleware; no sanitization happens here.
func Query(cfg *tenderchat.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.QueryRequest
		var response models.QueryResponse

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		rows, err := query.Run(r.Context(), cfg.DB, request.Query)
		if err != nil {
			cfg.Logger.Errorf("Unable to execute query: %s", err)
			metrics.QueriesTotal.WithLabelValues("direct", "error").Inc()
			response.Error = err.Error()
			_ = json.NewEncoder(w).Encode(response)
			return
		}
		metrics.QueriesTotal.WithLabelValues("direct", "ok").Inc()

		response.Result = rows.Header()
		_ = json.NewEncoder(w).Encode(response)
	}
}
