package classifier

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/report/billing"
	"github.com/cloudops/infra-monitor/report/domain"
)

const (
	subjectPrefixBudget  = "AWS Budgets"
	subjectPrefixAlarm   = "ALARM"
	subjectPrefixStorage = "Amazon S3"
)

// snsEnvelope is the notification-relay shape delivered by SNS triggers.
type snsEnvelope struct {
	Records []struct {
		EventSource string `json:"EventSource"`
		Sns         struct {
			Subject string `json:"Subject"`
			Message string `json:"Message"`
		} `json:"Sns"`
	} `json:"Records"`
}

type alarmMessage struct {
	AlarmArn string `json:"AlarmArn"`
}

type s3Message struct {
	Records []struct {
		S3 struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// Classifier normalizes inbound trigger payloads into report specs.
type Classifier struct {
	regions       config.RegionSet
	billingBucket string
	reportName    string
	timeNow       func() time.Time
}

func NewClassifier(regions config.RegionSet, billingBucket, reportName string) *Classifier {
	return &Classifier{
		regions:       regions,
		billingBucket: billingBucket,
		reportName:    reportName,
		timeNow:       time.Now,
	}
}

// Classify inspects raw and produces the report spec it implies. Rules are
// tried in order and the first match wins: an explicit report_type field is
// taken as a direct spec, then the SNS subject prefixes for budget alerts,
// alarms and billing-export drops. Anything else is an
// UnrecognizedEventError.
func (c *Classifier) Classify(raw []byte) (*domain.Spec, error) {
	if spec, ok := c.classifyDirect(raw); ok {
		return spec, nil
	}

	var envelope snsEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Records) > 0 &&
		envelope.Records[0].EventSource == "aws:sns" {
		notification := envelope.Records[0].Sns

		switch {
		case strings.HasPrefix(notification.Subject, subjectPrefixBudget):
			return &domain.Spec{
				Kind:    domain.KindBudgetNotification,
				Subject: notification.Subject,
				Message: notification.Message,
			}, nil

		case strings.HasPrefix(notification.Subject, subjectPrefixAlarm):
			return c.classifyAlarm(notification.Message)

		case strings.HasPrefix(notification.Subject, subjectPrefixStorage):
			if spec, ok := c.classifyStorageEvent(notification.Message); ok {
				return spec, nil
			}
		}
	}

	return nil, &domain.UnrecognizedEventError{Event: raw}
}

// classifyDirect accepts a payload that already is a spec, signalled by the
// presence of the report_type key.
func (c *Classifier) classifyDirect(raw []byte) (*domain.Spec, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, false
	}

	if _, ok := probe["report_type"]; !ok {
		return nil, false
	}

	var spec domain.Spec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, false
	}

	// Uppercase canonical forms so the validator and factory switch on the
	// enum values directly. Unknown values pass through for the validator
	// to reject.
	if kind, ok := domain.ParseReportKind(string(spec.Kind)); ok {
		spec.Kind = kind
	}

	if period, ok := domain.ParseReportPeriod(string(spec.Period)); ok {
		spec.Period = period
	}

	return &spec, true
}

// classifyAlarm maps a CloudWatch alarm notification to an 8 hour usage
// report for the alarm's region, read off the ARN.
func (c *Classifier) classifyAlarm(message string) (*domain.Spec, error) {
	var alarm alarmMessage
	if err := json.Unmarshal([]byte(message), &alarm); err != nil {
		return nil, &domain.RegionParseError{ARN: message}
	}

	region, ok := c.regions.MatchSubstring(alarm.AlarmArn)
	if !ok {
		return nil, &domain.RegionParseError{ARN: alarm.AlarmArn}
	}

	return &domain.Spec{
		Kind:    domain.KindEc2Usage,
		Regions: []string{region},
		Period:  domain.PeriodLast8Hours,
	}, nil
}

// classifyStorageEvent matches an object-created notification against the
// current period's expected billing export location.
func (c *Classifier) classifyStorageEvent(message string) (*domain.Spec, bool) {
	var event s3Message
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		return nil, false
	}

	expectedKey := billing.ReportKey(c.reportName, c.timeNow().UTC())

	for _, record := range event.Records {
		if record.S3.Bucket.Name == c.billingBucket && record.S3.Object.Key == expectedKey {
			return &domain.Spec{Kind: domain.KindBilling}, true
		}
	}

	return nil, false
}
