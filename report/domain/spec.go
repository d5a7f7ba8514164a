package domain

import "strings"

// ReportKind is the enumerated category of report content.
type ReportKind string

const (
	KindRealtimeEc2Usage   ReportKind = "REALTIME_EC2_USAGE_REPORT"
	KindEc2Usage           ReportKind = "EC2_USAGE_REPORT"
	KindBilling            ReportKind = "BILLING_REPORT"
	KindBudgetNotification ReportKind = "AWS_BUDGET_NOTIFICATION"
)

// ParseReportKind matches s against the known kinds, case-insensitively.
func ParseReportKind(s string) (ReportKind, bool) {
	switch ReportKind(strings.ToUpper(s)) {
	case KindRealtimeEc2Usage:
		return KindRealtimeEc2Usage, true
	case KindEc2Usage:
		return KindEc2Usage, true
	case KindBilling:
		return KindBilling, true
	case KindBudgetNotification:
		return KindBudgetNotification, true
	}

	return "", false
}

// ReportPeriod is a named relative time window for usage charts.
type ReportPeriod string

const (
	PeriodLastHour    ReportPeriod = "LAST_HOUR"
	PeriodLast8Hours  ReportPeriod = "LAST_8_HOURS"
	PeriodLast24Hours ReportPeriod = "LAST_24_HOURS"
	PeriodLastWeek    ReportPeriod = "LAST_WEEK"
	PeriodLastMonth   ReportPeriod = "LAST_MONTH"
	PeriodLast3Months ReportPeriod = "LAST_3_MONTHS"
)

// ParseReportPeriod matches s against the known periods, case-insensitively.
func ParseReportPeriod(s string) (ReportPeriod, bool) {
	switch ReportPeriod(strings.ToUpper(s)) {
	case PeriodLastHour:
		return PeriodLastHour, true
	case PeriodLast8Hours:
		return PeriodLast8Hours, true
	case PeriodLast24Hours:
		return PeriodLast24Hours, true
	case PeriodLastWeek:
		return PeriodLastWeek, true
	case PeriodLastMonth:
		return PeriodLastMonth, true
	case PeriodLast3Months:
		return PeriodLast3Months, true
	}

	return "", false
}

// Spec is the normalized description of one report-generation request.
// Exactly the fields relevant to Kind are populated; the validator rejects
// anything else.
type Spec struct {
	Kind    ReportKind   `json:"report_type"`
	Regions []string     `json:"report_regions,omitempty"`
	Period  ReportPeriod `json:"report_period,omitempty"`
	Subject string       `json:"subject,omitempty"`
	Message string       `json:"message,omitempty"`
}
