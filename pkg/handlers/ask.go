package handlers

import (
	"encoding/json"
	"net/http"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/chat"
	"github.com/tendly/tenderchat/pkg/models"
)

// Ask is the natural-language chat endpoint. A failed question is still a
// completed exchange: failures ride in the response body, not the status.
func Ask(cfg *tenderchat.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.AskRequest

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := cfg.Assistant.Ask(r.Context(), request.Question)
		writeResult(w, result)
	}
}

func writeResult(w http.ResponseWriter, result chat.Result) {
	response := models.AskResponse{
		Success:  result.OK(),
		Question: result.Question(),
	}
	if result.OK() {
		response.SQL = result.SQL()
		response.Columns = result.Rows().Columns
		response.Rows = result.Rows().Data
	} else {
		response.Error = result.ErrorMessage()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
