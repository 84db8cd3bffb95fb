package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/catalog"
	"github.com/tendly/tenderchat/pkg/models"
)

func ListCatalog(cfg *tenderchat.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var response models.CatalogResponse

		for _, entry := range cfg.Catalog.Entries() {
			kind := "prompt"
			if entry.IsSQL() {
				kind = "sql"
			}
			response.Entries = append(response.Entries, models.CatalogEntry{
				Label:    entry.Label,
				Category: entry.Category,
				Kind:     kind,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}
}

// RunCatalog executes a shortcut: SQL entries run directly, prompt entries
// take the chat assistant path. Unknown labels fail before any database or
// network work.
func RunCatalog(cfg *tenderchat.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		label := mux.Vars(r)["label"]

		entry, err := cfg.Catalog.Lookup(label)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if entry.IsSQL() {
			writeResult(w, cfg.Assistant.RunSQL(r.Context(), entry.Label, entry.SQL))
			return
		}
		writeResult(w, cfg.Assistant.Ask(r.Context(), entry.Prompt))
	}
}
