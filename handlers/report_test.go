package handlers

import (
	"bytes"
	"context"
	"errors"
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
	"github.com/cloudops/infra-monitor/framework/web"
	"github.com/cloudops/infra-monitor/logger"
	loggerMocks "github.com/cloudops/infra-monitor/logger/mocks"
	"github.com/cloudops/infra-monitor/report/service"
	serviceMocks "github.com/cloudops/infra-monitor/report/service/mocks"
)

func testRequest(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/events/report", bytes.NewReader([]byte(body)))

	return ctx, recorder
}

func newHandlerWithFakes(provider *providerMocks.CloudProvider, pub *serviceMocks.Publisher) *Report {
	log := &loggerMocks.ILogger{}
	log.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	h := NewReport(func(_ context.Context) logger.ILogger { return log }, &config.Settings{
		HomeRegion:        "eu-west-1",
		AccountID:         "097039683978",
		BillingBucket:     "billing-exports-bucket",
		BillingReportName: "AwsCostOverview",
		SecretName:        "ec2_usage_report_bot_secret",
		MetricNamespace:   "InfraMonitor",
		InstanceTypes:     []string{"c5a.xlarge"},
	})

	h.newProvider = func() iface.CloudProvider { return provider }
	h.newPublisher = func(_, _ string) service.Publisher { return pub }

	return h
}

func TestGenerateReportHappyPath(t *testing.T) {
	provider := &providerMocks.CloudProvider{}
	provider.On("GetSecretValue", mock.Anything, "eu-west-1", "ec2_usage_report_bot_secret").
		Return(`{"slack-token":"xoxb-test","slack-channel":"C012345"}`, nil)

	pub := &serviceMocks.Publisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	h := newHandlerWithFakes(provider, pub)

	ctx, recorder := testRequest(t, `{"report_type":"AWS_BUDGET_NOTIFICATION","subject":"AWS Budgets: x","message":"Budget Name: x"}`)

	require.NoError(t, h.GenerateReport(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"received":1,"published":1}`, recorder.Body.String())
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestGenerateReportUnrecognizedEvent(t *testing.T) {
	h := newHandlerWithFakes(&providerMocks.CloudProvider{}, &serviceMocks.Publisher{})

	ctx, _ := testRequest(t, `{"something":"else"}`)

	err := h.GenerateReport(ctx)

	var webErr *web.Error

	require.ErrorAs(t, err, &webErr)
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
}

func TestGenerateReportInvalidSpec(t *testing.T) {
	h := newHandlerWithFakes(&providerMocks.CloudProvider{}, &serviceMocks.Publisher{})

	ctx, _ := testRequest(t, `{"report_type":"EC2_USAGE_REPORT","report_regions":["mars-north-1"],"report_period":"LAST_HOUR"}`)

	err := h.GenerateReport(ctx)

	var webErr *web.Error

	require.ErrorAs(t, err, &webErr)
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
}

func TestGenerateReportSecretFailure(t *testing.T) {
	provider := &providerMocks.CloudProvider{}
	provider.On("GetSecretValue", mock.Anything, "eu-west-1", "ec2_usage_report_bot_secret").
		Return("", errors.New("access denied"))

	h := newHandlerWithFakes(provider, &serviceMocks.Publisher{})

	ctx, _ := testRequest(t, `{"report_type":"BILLING_REPORT"}`)

	err := h.GenerateReport(ctx)

	require.Error(t, err)

	var webErr *web.Error

	assert.False(t, errors.As(err, &webErr))
}

func TestGenerateReportPartialRunStillResponds(t *testing.T) {
	provider := &providerMocks.CloudProvider{}
	provider.On("GetSecretValue", mock.Anything, "eu-west-1", "ec2_usage_report_bot_secret").
		Return(`{"slack-token":"xoxb-test","slack-channel":"C012345"}`, nil)

	pub := &serviceMocks.Publisher{}
	pub.On("Publish", mock.Anything, mock.Anything).
		Return(errors.New("channel_not_found"))

	h := newHandlerWithFakes(provider, pub)

	ctx, recorder := testRequest(t, `{"report_type":"AWS_BUDGET_NOTIFICATION","message":"Budget Name: x"}`)

	require.NoError(t, h.GenerateReport(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"received":1,"published":0}`, recorder.Body.String())
}
