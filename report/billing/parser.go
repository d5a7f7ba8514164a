package billing

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cloudops/infra-monitor/report/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

const (
	columnAccountID  = "lineItem/UsageAccountId"
	columnUsageStart = "lineItem/UsageStartDate"
	columnUsageEnd   = "lineItem/UsageEndDate"
	columnCost       = "lineItem/UnblendedCost"
)

// ParseSpend extracts per-period spend totals for accountID from a zipped
// cost & usage CSV export. Rows of other accounts are skipped; a row counts
// toward a period when its usage window is fully contained in it. Periods
// with no matching rows are absent from the result.
func ParseSpend(accountID string, zipBytes []byte, now time.Time) (map[string]float64, error) {
	records, err := openExportCsv(zipBytes)
	if err != nil {
		return nil, &domain.BillingParseError{Err: err}
	}

	defer records.Close()

	reader := csv.NewReader(records)

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.BillingParseError{Err: fmt.Errorf("reading header: %w", err)}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, required := range []string{columnAccountID, columnUsageStart, columnUsageEnd, columnCost} {
		if _, ok := columns[required]; !ok {
			return nil, &domain.BillingParseError{Err: fmt.Errorf("missing column %q", required)}
		}
	}

	windows := Windows(now)
	totals := make(map[string]float64)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &domain.BillingParseError{Err: err}
		}

		if record[columns[columnAccountID]] != accountID {
			continue
		}

		start, err := time.Parse(timestampLayout, record[columns[columnUsageStart]])
		if err != nil {
			return nil, &domain.BillingParseError{Err: err}
		}

		end, err := time.Parse(timestampLayout, record[columns[columnUsageEnd]])
		if err != nil {
			return nil, &domain.BillingParseError{Err: err}
		}

		cost, err := strconv.ParseFloat(record[columns[columnCost]], 64)
		if err != nil {
			return nil, &domain.BillingParseError{Err: err}
		}

		for _, window := range windows {
			if !start.Before(window.Start) && !end.After(window.End) {
				totals[window.Name] += cost
			}
		}
	}

	return totals, nil
}

// openExportCsv locates the single CSV file inside the zipped export.
func openExportCsv(zipBytes []byte) (io.ReadCloser, error) {
	archive, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, err
	}

	for _, file := range archive.File {
		if strings.HasSuffix(file.Name, ".csv") {
			return file.Open()
		}
	}

	return nil, errors.New("no csv file in export archive")
}
