package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudops/infra-monitor/awsproviders/iface"
	providerMocks "github.com/cloudops/infra-monitor/awsproviders/mocks"
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/logger"
	loggerMocks "github.com/cloudops/infra-monitor/logger/mocks"
	"github.com/cloudops/infra-monitor/report/domain"
)

func TestPublishMetrics(t *testing.T) {
	provider := &providerMocks.CloudProvider{}
	provider.On("ListInstances", mock.Anything, "eu-west-1").
		Return([]domain.InstanceRecord{
			{ID: "i-1", Type: "c5a.xlarge", State: "running"},
		}, nil)
	provider.On("PutMetrics", mock.Anything, "eu-west-1", "InfraMonitor", mock.Anything).
		Return(nil)

	log := &loggerMocks.ILogger{}

	h := NewMetrics(func(_ context.Context) logger.ILogger { return log }, &config.Settings{
		HomeRegion:      "eu-west-1",
		MetricNamespace: "InfraMonitor",
	})
	h.newProvider = func() iface.CloudProvider { return provider }

	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/events/metrics", nil)

	require.NoError(t, h.PublishMetrics(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)

	// 6 per-state datums plus one (state, type) pair.
	assert.JSONEq(t, `{"success":true,"received-metrics":7,"published-metrics":7}`, recorder.Body.String())
}
