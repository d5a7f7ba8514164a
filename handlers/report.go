package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"

	"github.com/cloudops/infra-monitor/awsproviders/dal"
	"github.com/cloudops/infra-monitor/awsproviders/iface"
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/framework/web"
	"github.com/cloudops/infra-monitor/logger"
	"github.com/cloudops/infra-monitor/report/classifier"
	"github.com/cloudops/infra-monitor/report/publisher"
	"github.com/cloudops/infra-monitor/report/service"
	"github.com/cloudops/infra-monitor/report/validator"
)

// slackCredentials is the JSON payload stored in the bot's secret.
type slackCredentials struct {
	Token   string `json:"slack-token"`
	Channel string `json:"slack-channel"`
}

// Report handles report-generation trigger events.
type Report struct {
	loggerProvider logger.Provider
	settings       *config.Settings
	classifier     *classifier.Classifier
	validator      *validator.Validator

	// provider and publisher construction is indirect so tests can swap in
	// fakes. Providers are built fresh per invocation.
	newProvider  func() iface.CloudProvider
	newPublisher func(token, channel string) service.Publisher
}

func NewReport(log logger.Provider, settings *config.Settings) *Report {
	return &Report{
		loggerProvider: log,
		settings:       settings,
		classifier:     classifier.NewClassifier(config.Regions, settings.BillingBucket, settings.BillingReportName),
		validator:      validator.NewValidator(config.Regions),
		newProvider: func() iface.CloudProvider {
			return dal.NewCloudProvider()
		},
		newPublisher: func(token, channel string) service.Publisher {
			return publisher.NewSlackPublisher(slack.New(token), channel)
		},
	}
}

// GenerateReport classifies the trigger payload, validates the resulting
// spec and runs the report pipeline. Classification and validation failures
// are client errors; the pipeline's outcome is returned as counts either
// way.
func (h *Report) GenerateReport(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	spec, err := h.classifier.Classify(body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.validator.Validate(spec); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	provider := h.newProvider()

	secret, err := provider.GetSecretValue(ctx, h.settings.HomeRegion, h.settings.SecretName)
	if err != nil {
		return err
	}

	var creds slackCredentials
	if err := json.Unmarshal([]byte(secret), &creds); err != nil {
		return fmt.Errorf("decoding slack credentials secret: %w", err)
	}

	svc := service.NewReportService(h.loggerProvider, provider,
		h.newPublisher(creds.Token, creds.Channel), h.settings)

	// A partial run is reported through the counts, not the status code.
	result, _ := svc.Run(ctx, spec)

	return web.Respond(ctx, result, http.StatusOK)
}
