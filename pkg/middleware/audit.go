package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/audit"
)

// Audit records the question or statement of every request before the
// handler runs. The webhook sink, when configured, must accept the event or
// the request is rejected; the log sink is best effort.
func Audit(cfg *tenderchat.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			now := time.Now()

			if s := r.Header.Get(contentLengthHeader); s == "" {
				l := fmt.Sprintf("Request without required header: %s", contentLengthHeader)
				http.Error(w, l, http.StatusBadRequest)
				return
			}

			user := "anonymous"
			if ctxUser := ctx.Value(ContextKeyUser); ctxUser != nil {
				user = ctxUser.(string)
			} else if s := r.Header.Get(forwardedUserHeader); s != "" {
				user = s
			}

			var b bytes.Buffer
			if _, err := io.Copy(&b, r.Body); err != nil {
				cfg.Logger.Errorf("Unable to copy request body: %s", err)
				http.Error(w, "An internal error has occurred", http.StatusInternalServerError)
				return
			}
			_ = r.Body.Close()

			r.Body = io.NopCloser(bytes.NewReader(b.Bytes()))

			var request struct {
				Query    string `json:"query"`
				Question string `json:"question"`
			}
			if err := json.Unmarshal(b.Bytes(), &request); err != nil {
				cfg.Logger.Debugf("Unable to unmarshal request body: %s", err)
				h.ServeHTTP(w, r)
				return
			}

			statement := request.Query
			if statement == "" {
				statement = request.Question
			}

			data := &audit.QueryData{
				ID:        uuid.NewString(),
				Query:     statement,
				User:      user,
				Path:      r.URL.Path,
				Timestamp: now.Unix(),
			}
			_ = cfg.LoggerAudit.Write(data)

			if cfg.WebhookAudit != nil {
				if err := cfg.WebhookAudit.Write(data); err != nil {
					cfg.Logger.Errorf("Unable to send audit to collector: %s", err)
					http.Error(w, "An internal error has occurred", http.StatusInternalServerError)
					return
				}
			}
			h.ServeHTTP(w, r)
		})
	}
}
