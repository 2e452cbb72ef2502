package handler

import (
	"CaptionRelay/app"
	"CaptionRelay/config/environment"
	"CaptionRelay/logging"
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

var (
	relay    *app.App
	setupErr error
	once     sync.Once
)

// setup runs once per cold start; the environment is set in the platform console.
func setup() {
	cfg, err := environment.Load("")
	if err != nil {
		setupErr = err
		return
	}
	logging.InitLogger(logging.ParseLevel(cfg.LogLevel))

	relay, setupErr = app.New(context.Background(), cfg)
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)

	if setupErr != nil {
		logging.GetLogger().WithError(setupErr).Error("caption relay setup failed")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": http.StatusInternalServerError,
			"message":    "caption relay is misconfigured",
		})
		return
	}

	relay.Engine.ServeHTTP(w, r)
}
