package handler

import (
	"net/http"
	"sync"

	"wehouse/config"
	"wehouse/di"
	"wehouse/infras/metrics"
	"wehouse/shared/logger"
	"wehouse/shared/timezone"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler is the serverless entry point. The service graph is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		_ = timezone.Init(cfg.App.Timezone)

		if cfg.Metrics.Enable {
			metrics.Register()
		}

		app, _ = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
