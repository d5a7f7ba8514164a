package config

import (
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

const (
	defaultAddr              = "0.0.0.0:8082"
	defaultBillingReportName = "AwsCostOverview"
	defaultSecretName        = "ec2_usage_report_bot_secret"
	defaultMetricNamespace   = "InfraMonitor"
)

// Settings holds the immutable bot configuration, loaded once at startup.
type Settings struct {
	// HomeRegion is the region the bot itself runs in; billing reports and
	// metric emission are tied to it.
	HomeRegion string `yaml:"home_region"`
	// AccountID is the payer account whose cost lines are aggregated.
	AccountID string `yaml:"account_id"`
	// BillingBucket is the bucket the cost & usage exports land in.
	BillingBucket string `yaml:"billing_bucket"`
	// BillingReportName is the export's report name, used to derive object keys.
	BillingReportName string `yaml:"billing_report_name"`
	// SecretName is the Secrets Manager secret holding the Slack credentials.
	SecretName string `yaml:"secret_name"`
	// MetricNamespace is the CloudWatch namespace for custom instance metrics.
	MetricNamespace string `yaml:"metric_namespace"`
	// InstanceTypes is the allow-list charted by usage reports.
	InstanceTypes []string `yaml:"instance_types"`

	Addr      string `yaml:"addr"`
	SentryDSN string `yaml:"sentry_dsn"`
}

// GetEnv returns the value of an environment variable, or a fallback when
// the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// Load parses the optional YAML settings file at path, then applies
// environment overrides and defaults. A missing file is not an error;
// required fields missing from both sources are, and are reported together.
func Load(path string) (*Settings, error) {
	var s Settings

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		if err == nil {
			if err := yaml.Unmarshal(b, &s); err != nil {
				return nil, err
			}
		}
	}

	s.HomeRegion = GetEnv("AWS_REGION", s.HomeRegion)
	s.AccountID = GetEnv("BILLING_ACCOUNT_ID", s.AccountID)
	s.BillingBucket = GetEnv("BILLING_BUCKET", s.BillingBucket)
	s.SecretName = GetEnv("BOT_SECRET_NAME", s.SecretName)
	s.SentryDSN = GetEnv("SENTRY_DSN", s.SentryDSN)
	s.Addr = GetEnv("ADDR", s.Addr)

	if s.Addr == "" {
		s.Addr = defaultAddr
	}

	if s.BillingReportName == "" {
		s.BillingReportName = defaultBillingReportName
	}

	if s.SecretName == "" {
		s.SecretName = defaultSecretName
	}

	if s.MetricNamespace == "" {
		s.MetricNamespace = defaultMetricNamespace
	}

	if len(s.InstanceTypes) == 0 {
		s.InstanceTypes = []string{"c5a.16xlarge", "c5a.xlarge"}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) validate() error {
	var result *multierror.Error

	if s.HomeRegion == "" {
		result = multierror.Append(result, errors.New("home_region is required (or set AWS_REGION)"))
	}

	if s.AccountID == "" {
		result = multierror.Append(result, errors.New("account_id is required (or set BILLING_ACCOUNT_ID)"))
	}

	if s.BillingBucket == "" {
		result = multierror.Append(result, errors.New("billing_bucket is required (or set BILLING_BUCKET)"))
	}

	return result.ErrorOrNil()
}
