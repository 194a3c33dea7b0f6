package handler

import (
	"net/http"
	"sync"

	"eventbook/config"
	"eventbook/di"
	"eventbook/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler serves the API as a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
