package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	tenderchat "github.com/tendly/tenderchat/pkg"
)

func Healthcheck(cfg *tenderchat.Config) http.Handler {
	return healthcheck.Handler(
		healthcheck.WithTimeout(5*time.Second),
		healthcheck.WithChecker(
			"database", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					if err := cfg.DB.PingContext(ctx); err != nil {
						cfg.Logger.Errorf("Healthcheck database ping failed: %s", err)
						return errors.New("failed to connect to database... see service logs for further details")
					}
					return nil
				},
			),
		),
	)
}
