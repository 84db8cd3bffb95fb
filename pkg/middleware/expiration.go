package middleware

import (
	"net/http"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/env/user"
)

func Expiration(cfg *tenderchat.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.UserEnv.IsExpired() {
				l := "The service instance has expired"
				cfg.Logger.Errorf("%s (expiration date: %s)", l,
					cfg.UserEnv.Expiration.Format(user.ExpiryDateLayout),
				)
				http.Error(w, l, http.StatusServiceUnavailable)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
