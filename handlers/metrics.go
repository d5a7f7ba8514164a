package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudops/infra-monitor/awsproviders/dal"
	"github.com/cloudops/infra-monitor/awsproviders/iface"
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/framework/web"
	"github.com/cloudops/infra-monitor/logger"
	"github.com/cloudops/infra-monitor/metrics"
)

// Metrics handles the scheduled instance-count emission tick.
type Metrics struct {
	loggerProvider logger.Provider
	settings       *config.Settings
	newProvider    func() iface.CloudProvider
}

func NewMetrics(log logger.Provider, settings *config.Settings) *Metrics {
	return &Metrics{
		loggerProvider: log,
		settings:       settings,
		newProvider: func() iface.CloudProvider {
			return dal.NewCloudProvider()
		},
	}
}

// PublishMetrics counts the home region's instances and publishes the
// aggregates as custom metrics, returning the run's counts.
func (h *Metrics) PublishMetrics(ctx *gin.Context) error {
	svc := metrics.NewService(h.loggerProvider, h.newProvider(), h.settings)

	result, err := svc.Run(ctx)
	if err != nil {
		h.loggerProvider(ctx).Errorf("metric emission incomplete: %v", err)
	}

	return web.Respond(ctx, result, http.StatusOK)
}
