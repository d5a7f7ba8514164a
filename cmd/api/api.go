package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/framework/mid"
	"github.com/cloudops/infra-monitor/framework/web"
	"github.com/cloudops/infra-monitor/handlers"
	"github.com/cloudops/infra-monitor/logger"
)

// API bundles the web app with the dependencies the route handlers need.
type API struct {
	App            *web.App
	loggerProvider logger.Provider
	settings       *config.Settings
}

func NewAPI(shutdown chan os.Signal, log logger.Provider, settings *config.Settings) *API {
	app := web.NewApp(shutdown, settings.SentryDSN, config.GetEnv("ENV", "production"),
		mid.Logger(),
		mid.Errors(),
		mid.Panics(),
		mid.Sentry(),
	)

	return &API{
		App:            app,
		loggerProvider: log,
		settings:       settings,
	}
}

// Build mounts all routes on the app.
func (a *API) Build() {
	report := handlers.NewReport(a.loggerProvider, a.settings)
	metrics := handlers.NewMetrics(a.loggerProvider, a.settings)

	a.App.Post("/events/report", report.GenerateReport)
	a.App.Post("/events/metrics", metrics.PublishMetrics)

	a.App.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
	})
}
