package billing

import (
	"fmt"
	"time"
)

// Period is one spend-aggregation window while scanning a billing export.
type Period struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Windows returns the fixed aggregation periods for the given instant:
// calendar month to date, plus up to three trailing single-day windows
// ending 1, 2 and 3 days before now. A trailing window is skipped near the
// start of a month when its date would fall into the previous one.
func Windows(now time.Time) []Period {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	periods := []Period{{
		Name:  "this-month",
		Start: monthStart,
		End:   monthStart.AddDate(0, 1, 0),
	}}

	for _, offset := range []int{3, 2, 1} {
		if now.Day() <= offset {
			continue
		}

		start := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, time.UTC)
		periods = append(periods, Period{
			Name:  fmt.Sprintf("day-%02d", now.Day()-offset),
			Start: start,
			End:   start.AddDate(0, 0, 1),
		})
	}

	return periods
}

// PeriodToken returns the export's period segment, e.g. "20240101-20240201".
func PeriodToken(now time.Time) string {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	return fmt.Sprintf("%d%02d01-%d%02d01",
		monthStart.Year(), monthStart.Month(),
		nextMonthStart.Year(), nextMonthStart.Month(),
	)
}

// HumanRange returns the billing period as shown in report titles,
// e.g. "01-Jan-2024 to 01-Feb-2024".
func HumanRange(now time.Time) string {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	return monthStart.Format("02-Jan-2006") + " to " + nextMonthStart.Format("02-Jan-2006")
}

// ReportKey returns the object key the current period's export lands under.
func ReportKey(reportName string, now time.Time) string {
	return fmt.Sprintf("reports/%s/%s/%s-00001.csv.zip", reportName, PeriodToken(now), reportName)
}

// AttachmentName returns the period-stamped filename the export is
// re-published under.
func AttachmentName(now time.Time) string {
	return fmt.Sprintf("aws-cost-usage-%s.csv.zip", PeriodToken(now))
}
