package dal

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/secretsmanager"

	"github.com/cloudops/infra-monitor/awsproviders/iface"
	"github.com/cloudops/infra-monitor/report/domain"
)

/*
	CloudProviderDAL

Data Access Layer responsible for communication with the AWS APIs the bot
consumes. Sessions are cached per region for the lifetime of one invocation.
*/
type CloudProviderDAL struct {
	sessions map[string]*session.Session
}

func NewCloudProvider() *CloudProviderDAL {
	return &CloudProviderDAL{
		sessions: make(map[string]*session.Session),
	}
}

func (d *CloudProviderDAL) session(region string) (*session.Session, error) {
	if s, ok := d.sessions[region]; ok {
		return s, nil
	}

	s, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, &iface.ProviderError{Op: "session.NewSession", Err: err}
	}

	d.sessions[region] = s

	return s, nil
}

func (d *CloudProviderDAL) ListInstances(ctx context.Context, region string) ([]domain.InstanceRecord, error) {
	sess, err := d.session(region)
	if err != nil {
		return nil, err
	}

	var records []domain.InstanceRecord

	err = ec2.New(sess).DescribeInstancesPagesWithContext(ctx, &ec2.DescribeInstancesInput{},
		func(page *ec2.DescribeInstancesOutput, _ bool) bool {
			for _, reservation := range page.Reservations {
				for _, instance := range reservation.Instances {
					records = append(records, domain.InstanceRecord{
						ID:    aws.StringValue(instance.InstanceId),
						Type:  aws.StringValue(instance.InstanceType),
						State: aws.StringValue(instance.State.Name),
					})
				}
			}

			return true
		})
	if err != nil {
		return nil, &iface.ProviderError{Op: "ec2.DescribeInstances", Err: err}
	}

	return records, nil
}

func (d *CloudProviderDAL) GetMetricWidgetImage(ctx context.Context, region string, widgetJSON []byte) ([]byte, error) {
	sess, err := d.session(region)
	if err != nil {
		return nil, err
	}

	output, err := cloudwatch.New(sess).GetMetricWidgetImageWithContext(ctx, &cloudwatch.GetMetricWidgetImageInput{
		MetricWidget: aws.String(string(widgetJSON)),
	})
	if err != nil {
		return nil, &iface.ProviderError{Op: "cloudwatch.GetMetricWidgetImage", Err: err}
	}

	if len(output.MetricWidgetImage) == 0 {
		return nil, &iface.ProviderError{
			Op:  "cloudwatch.GetMetricWidgetImage",
			Err: errors.New("empty image in response"),
		}
	}

	return output.MetricWidgetImage, nil
}

func (d *CloudProviderDAL) GetSecretValue(ctx context.Context, region, name string) (string, error) {
	sess, err := d.session(region)
	if err != nil {
		return "", err
	}

	output, err := secretsmanager.New(sess).GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", &iface.ProviderError{Op: "secretsmanager.GetSecretValue", Err: err}
	}

	return aws.StringValue(output.SecretString), nil
}

func (d *CloudProviderDAL) DownloadObject(ctx context.Context, region, bucket, key string) ([]byte, error) {
	sess, err := d.session(region)
	if err != nil {
		return nil, err
	}

	output, err := s3.New(sess).GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &iface.ProviderError{Op: "s3.GetObject", Err: err}
	}

	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, &iface.ProviderError{Op: "s3.GetObject", Err: err}
	}

	return body, nil
}

func (d *CloudProviderDAL) PutMetrics(ctx context.Context, region, namespace string, data []*cloudwatch.MetricDatum) error {
	sess, err := d.session(region)
	if err != nil {
		return err
	}

	if _, err := cloudwatch.New(sess).PutMetricDataWithContext(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(namespace),
		MetricData: data,
	}); err != nil {
		return &iface.ProviderError{Op: "cloudwatch.PutMetricData", Err: err}
	}

	return nil
}
