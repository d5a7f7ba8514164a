package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/samber/lo"

	"github.com/cloudops/infra-monitor/awsproviders/iface"
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/logger"
	"github.com/cloudops/infra-monitor/report/domain"
)

const (
	metricPerState        = "InstanceCountPerState"
	metricPerStateAndType = "InstanceCountPerStateAndType"

	// PutMetricData caps a single request at 20 datums.
	putChunkSize = 20
)

// lifecycleStates are always reported, zero-valued when no instance is in
// them, so the per-state time series never have gaps.
var lifecycleStates = []string{
	"pending",
	"running",
	"stopping",
	"stopped",
	"shutting-down",
	"terminated",
}

// Result summarizes one metric-emission run.
type Result struct {
	Success   bool `json:"success"`
	Received  int  `json:"received-metrics"`
	Published int  `json:"published-metrics"`
}

// Service counts the home region's instances and publishes the counts as
// custom CloudWatch metrics.
type Service struct {
	loggerProvider logger.Provider
	provider       iface.CloudProvider
	settings       *config.Settings
	timeNow        func() time.Time
}

func NewService(log logger.Provider, provider iface.CloudProvider, settings *config.Settings) *Service {
	return &Service{
		loggerProvider: log,
		provider:       provider,
		settings:       settings,
		timeNow:        time.Now,
	}
}

// Run fetches the instance inventory, aggregates it into per-state and per
// type-and-state counts and publishes the datums in chunks. The first
// publish failure stops the run; the result carries how many datums were
// built versus published.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	l := s.loggerProvider(ctx)

	instances, err := s.provider.ListInstances(ctx, s.settings.HomeRegion)
	if err != nil {
		return &Result{}, err
	}

	data := s.buildDatums(instances)

	result := &Result{Received: len(data)}

	for _, chunk := range lo.Chunk(data, putChunkSize) {
		if err := s.provider.PutMetrics(ctx, s.settings.HomeRegion, s.settings.MetricNamespace, chunk); err != nil {
			l.Errorf("published %d of %d metrics: %v", result.Published, result.Received, err)
			return result, err
		}

		result.Published += len(chunk)
	}

	result.Success = result.Published == result.Received

	return result, nil
}

func (s *Service) buildDatums(instances []domain.InstanceRecord) []*cloudwatch.MetricDatum {
	now := s.timeNow().UTC()

	stateCounts := make(map[string]int, len(lifecycleStates))
	for _, state := range lifecycleStates {
		stateCounts[state] = 0
	}

	type pair struct {
		state        string
		instanceType string
	}

	var pairOrder []pair

	pairCounts := make(map[pair]int)

	for _, instance := range instances {
		stateCounts[instance.State]++

		p := pair{state: instance.State, instanceType: instance.Type}
		if _, seen := pairCounts[p]; !seen {
			pairOrder = append(pairOrder, p)
		}

		pairCounts[p]++
	}

	data := make([]*cloudwatch.MetricDatum, 0, len(lifecycleStates)+len(pairOrder))

	for _, state := range lifecycleStates {
		data = append(data, &cloudwatch.MetricDatum{
			MetricName: aws.String(metricPerState),
			Timestamp:  aws.Time(now),
			Unit:       aws.String(cloudwatch.StandardUnitNone),
			Value:      aws.Float64(float64(stateCounts[state])),
			Dimensions: []*cloudwatch.Dimension{
				{Name: aws.String("InstanceState"), Value: aws.String(state)},
			},
		})
	}

	for _, p := range pairOrder {
		data = append(data, &cloudwatch.MetricDatum{
			MetricName: aws.String(metricPerStateAndType),
			Timestamp:  aws.Time(now),
			Unit:       aws.String(cloudwatch.StandardUnitNone),
			Value:      aws.Float64(float64(pairCounts[p])),
			Dimensions: []*cloudwatch.Dimension{
				{Name: aws.String("InstanceType"), Value: aws.String(p.instanceType)},
				{Name: aws.String("InstanceState"), Value: aws.String(p.state)},
			},
		})
	}

	return data
}
