package iface

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"github.com/cloudops/infra-monitor/report/domain"
)

// CloudProvider is the AWS boundary the bot calls through. One value is
// constructed per invocation and injected into the pipeline; its client
// cache lives for that invocation only.
type CloudProvider interface {
	// ListInstances returns every compute instance visible in the region.
	ListInstances(ctx context.Context, region string) ([]domain.InstanceRecord, error)
	// GetMetricWidgetImage renders the CloudWatch metric widget to a PNG.
	GetMetricWidgetImage(ctx context.Context, region string, widgetJSON []byte) ([]byte, error)
	// GetSecretValue fetches a Secrets Manager secret string.
	GetSecretValue(ctx context.Context, region, name string) (string, error)
	// DownloadObject reads a whole S3 object into memory.
	DownloadObject(ctx context.Context, region, bucket, key string) ([]byte, error)
	// PutMetrics publishes custom metric data under the given namespace.
	PutMetrics(ctx context.Context, region, namespace string, data []*cloudwatch.MetricDatum) error
}

// ProviderError wraps any cloud API failure.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
