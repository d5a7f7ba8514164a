package service

import (
	"context"
	"time"

	"github.com/cloudops/infra-monitor/awsproviders/iface"
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/logger"
	"github.com/cloudops/infra-monitor/report/billing"
	"github.com/cloudops/infra-monitor/report/domain"
)

// Publisher delivers a rendered report to the chat channel.
type Publisher interface {
	Publish(ctx context.Context, report *domain.Report) error
}

// RunResult summarizes one pipeline run. Success means at least one report
// was generated and handed to the publisher; a partial run still reports
// its counts.
type RunResult struct {
	Success   bool `json:"success"`
	Received  int  `json:"received"`
	Published int  `json:"published"`
}

// ReportService turns validated report specs into published reports.
type ReportService struct {
	loggerProvider logger.Provider
	provider       iface.CloudProvider
	publisher      Publisher
	settings       *config.Settings
	timeNow        func() time.Time
}

func NewReportService(
	log logger.Provider,
	provider iface.CloudProvider,
	publisher Publisher,
	settings *config.Settings,
) *ReportService {
	return &ReportService{
		loggerProvider: log,
		provider:       provider,
		publisher:      publisher,
		settings:       settings,
		timeNow:        time.Now,
	}
}

// Generate produces the reports spec calls for, handing each one to emit as
// soon as it is rendered. Generation stops on the first fetch failure or the
// first emit error; the count of reports emitted so far is returned either
// way. Re-invoking repeats the data fetches, so callers consume one pass.
func (s *ReportService) Generate(ctx context.Context, spec *domain.Spec, emit func(*domain.Report) error) (int, error) {
	produced := 0

	send := func(report *domain.Report) error {
		if err := emit(report); err != nil {
			return err
		}

		produced++

		return nil
	}

	switch spec.Kind {
	case domain.KindRealtimeEc2Usage:
		for _, region := range spec.Regions {
			instances, err := s.provider.ListInstances(ctx, region)
			if err != nil {
				return produced, err
			}

			if err := send(renderRealtimeUsage(region, instances)); err != nil {
				return produced, err
			}
		}

	case domain.KindEc2Usage:
		for _, region := range spec.Regions {
			widget, err := buildWidget(region, s.settings.MetricNamespace, s.settings.InstanceTypes, spec.Period)
			if err != nil {
				return produced, err
			}

			image, err := s.provider.GetMetricWidgetImage(ctx, region, widget)
			if err != nil {
				return produced, err
			}

			if err := send(renderUsageChart(region, spec.Period, image)); err != nil {
				return produced, err
			}
		}

	case domain.KindBilling:
		report, err := s.generateBillingReport(ctx)
		if err != nil {
			return produced, err
		}

		if err := send(report); err != nil {
			return produced, err
		}

	case domain.KindBudgetNotification:
		if err := send(renderBudgetNotification(spec.Message)); err != nil {
			return produced, err
		}
	}

	return produced, nil
}

// generateBillingReport downloads the current period's export once and uses
// the same bytes for both spend parsing and the re-published attachment.
func (s *ReportService) generateBillingReport(ctx context.Context) (*domain.Report, error) {
	now := s.timeNow().UTC()
	key := billing.ReportKey(s.settings.BillingReportName, now)

	export, err := s.provider.DownloadObject(ctx, s.settings.HomeRegion, s.settings.BillingBucket, key)
	if err != nil {
		return nil, err
	}

	totals, err := billing.ParseSpend(s.settings.AccountID, export, now)
	if err != nil {
		return nil, err
	}

	return renderBillingReport(totals, export, billing.Windows(now),
		billing.HumanRange(now), billing.AttachmentName(now)), nil
}

// Run generates every report spec calls for and publishes each as it is
// produced. Received counts rendered reports, Published counts successful
// deliveries; the first failure stops the run but the counts accumulated so
// far are still returned.
func (s *ReportService) Run(ctx context.Context, spec *domain.Spec) (*RunResult, error) {
	l := s.loggerProvider(ctx)

	result := &RunResult{}

	_, err := s.Generate(ctx, spec, func(report *domain.Report) error {
		result.Received++

		if err := s.publisher.Publish(ctx, report); err != nil {
			return err
		}

		result.Published++

		return nil
	})

	result.Success = result.Received > 0

	if err != nil {
		l.Errorf("report pipeline stopped after %d of %d published: %v",
			result.Published, result.Received, err)
	}

	return result, err
}
