package service

import "github.com/cloudops/infra-monitor/report/domain"

// widgetStartOffsets maps a report period to the relative ISO-8601 start
// offset understood by the metric-widget renderer.
var widgetStartOffsets = map[domain.ReportPeriod]string{
	domain.PeriodLastHour:    "-PT1H",
	domain.PeriodLast8Hours:  "-PT8H",
	domain.PeriodLast24Hours: "-PT24H",
	domain.PeriodLastWeek:    "-PT168H",
	domain.PeriodLastMonth:   "-PT720H",
	domain.PeriodLast3Months: "-PT2160H",
}

// periodPhrases maps a report period to the wording used in report titles.
var periodPhrases = map[domain.ReportPeriod]string{
	domain.PeriodLastHour:    "past hour",
	domain.PeriodLast8Hours:  "past 8 hours",
	domain.PeriodLast24Hours: "past 24 hours",
	domain.PeriodLastWeek:    "past week",
	domain.PeriodLastMonth:   "past month",
	domain.PeriodLast3Months: "past 3 months",
}
