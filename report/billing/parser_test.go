package billing

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudops/infra-monitor/report/domain"
)

const targetAccount = "097039683978"

func zipCsv(t *testing.T, name, content string) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	f, err := w.Create(name)
	require.NoError(t, err)

	_, err = f.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestParseSpendSkipsForeignAccounts(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	csvContent := "lineItem/UsageAccountId,lineItem/UsageStartDate,lineItem/UsageEndDate,lineItem/UnblendedCost\n" +
		targetAccount + ",2024-01-10T00:00:00Z,2024-01-10T01:00:00Z,10.00\n" +
		targetAccount + ",2024-01-11T00:00:00Z,2024-01-11T01:00:00Z,5.50\n" +
		"111111111111,2024-01-10T00:00:00Z,2024-01-10T01:00:00Z,1000.00\n"

	totals, err := ParseSpend(targetAccount, zipCsv(t, "AwsCostOverview-00001.csv", csvContent), now)

	require.NoError(t, err)
	assert.InDelta(t, 15.50, totals["this-month"], 0.0001)
}

func TestParseSpendOmitsEmptyPeriods(t *testing.T) {
	// Day 15: trailing windows are day-12, day-13 and day-14. The only row
	// falls on day-10, so it counts toward this-month and nothing else.
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	csvContent := "lineItem/UsageAccountId,lineItem/UsageStartDate,lineItem/UsageEndDate,lineItem/UnblendedCost\n" +
		targetAccount + ",2024-01-10T00:00:00Z,2024-01-10T01:00:00Z,3.25\n"

	totals, err := ParseSpend(targetAccount, zipCsv(t, "AwsCostOverview-00001.csv", csvContent), now)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"this-month": 3.25}, totals)
}

func TestParseSpendAccumulatesTrailingDay(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	csvContent := "lineItem/UsageAccountId,lineItem/UsageStartDate,lineItem/UsageEndDate,lineItem/UnblendedCost\n" +
		targetAccount + ",2024-01-14T03:00:00Z,2024-01-14T04:00:00Z,2.00\n" +
		targetAccount + ",2024-01-14T05:00:00Z,2024-01-14T06:00:00Z,1.00\n"

	totals, err := ParseSpend(targetAccount, zipCsv(t, "AwsCostOverview-00001.csv", csvContent), now)

	require.NoError(t, err)
	assert.InDelta(t, 3.00, totals["this-month"], 0.0001)
	assert.InDelta(t, 3.00, totals["day-14"], 0.0001)
	assert.NotContains(t, totals, "day-12")
	assert.NotContains(t, totals, "day-13")
}

func TestParseSpendRejectsRowSpanningPeriodBoundary(t *testing.T) {
	// A usage window that ends after the period end is not counted.
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	csvContent := "lineItem/UsageAccountId,lineItem/UsageStartDate,lineItem/UsageEndDate,lineItem/UnblendedCost\n" +
		targetAccount + ",2024-01-14T23:00:00Z,2024-01-15T01:00:00Z,9.99\n"

	totals, err := ParseSpend(targetAccount, zipCsv(t, "AwsCostOverview-00001.csv", csvContent), now)

	require.NoError(t, err)
	assert.NotContains(t, totals, "day-14")
}

func TestParseSpendMissingColumn(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	csvContent := "lineItem/UsageAccountId,lineItem/UsageStartDate,lineItem/UsageEndDate\n" +
		targetAccount + ",2024-01-10T00:00:00Z,2024-01-10T01:00:00Z\n"

	_, err := ParseSpend(targetAccount, zipCsv(t, "AwsCostOverview-00001.csv", csvContent), now)

	var parseErr *domain.BillingParseError

	require.ErrorAs(t, err, &parseErr)
}

func TestParseSpendNotAZip(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	_, err := ParseSpend(targetAccount, []byte("plain text"), now)

	var parseErr *domain.BillingParseError

	require.ErrorAs(t, err, &parseErr)
}

func TestWindowsEarlyMonth(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		names []string
	}{
		{"first of month", 1, []string{"this-month"}},
		{"second of month", 2, []string{"this-month", "day-01"}},
		{"third of month", 3, []string{"this-month", "day-01", "day-02"}},
		{"mid month", 15, []string{"this-month", "day-12", "day-13", "day-14"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 3, tt.day, 10, 0, 0, 0, time.UTC)

			var names []string
			for _, w := range Windows(now) {
				names = append(names, w.Name)
			}

			assert.Equal(t, tt.names, names)
		})
	}
}

func TestPeriodTokenDecemberRollsOver(t *testing.T) {
	now := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "20241201-20250101", PeriodToken(now))
	assert.Equal(t, "01-Dec-2024 to 01-Jan-2025", HumanRange(now))
}

func TestReportKey(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"reports/AwsCostOverview/20240101-20240201/AwsCostOverview-00001.csv.zip",
		ReportKey("AwsCostOverview", now),
	)
	assert.Equal(t, "aws-cost-usage-20240101-20240201.csv.zip", AttachmentName(now))
}
