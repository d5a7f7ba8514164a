package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/stretchr/testify/mock"

	"github.com/cloudops/infra-monitor/report/domain"
)

type CloudProvider struct {
	mock.Mock
}

func (m *CloudProvider) ListInstances(ctx context.Context, region string) ([]domain.InstanceRecord, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.InstanceRecord), args.Error(1)
}

func (m *CloudProvider) GetMetricWidgetImage(ctx context.Context, region string, widgetJSON []byte) ([]byte, error) {
	args := m.Called(ctx, region, widgetJSON)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *CloudProvider) GetSecretValue(ctx context.Context, region, name string) (string, error) {
	args := m.Called(ctx, region, name)
	return args.String(0), args.Error(1)
}

func (m *CloudProvider) DownloadObject(ctx context.Context, region, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, region, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *CloudProvider) PutMetrics(ctx context.Context, region, namespace string, data []*cloudwatch.MetricDatum) error {
	args := m.Called(ctx, region, namespace, data)
	return args.Error(0)
}
