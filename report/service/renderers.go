package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cloudops/infra-monitor/report/billing"
	"github.com/cloudops/infra-monitor/report/domain"
)

// renderRealtimeUsage lists the region's instances grouped by type and
// state, one table row per distinct pair in fetch order.
func renderRealtimeUsage(region string, instances []domain.InstanceRecord) *domain.Report {
	type group struct {
		instanceType string
		state        string
	}

	var order []group

	counts := make(map[group]int)

	for _, instance := range instances {
		g := group{instanceType: instance.Type, state: instance.State}
		if _, seen := counts[g]; !seen {
			order = append(order, g)
		}

		counts[g]++
	}

	var table strings.Builder

	table.WriteString("```")
	table.WriteString(fmt.Sprintf("%-20s%-12s%-5s\n", "TYPE", "STATE", "COUNT"))
	table.WriteString(strings.Repeat("-", 37) + "\n")

	for _, g := range order {
		table.WriteString(fmt.Sprintf("%-20s%-12s%-5d\n", g.instanceType, g.state, counts[g]))
	}

	table.WriteString("```")

	return &domain.Report{
		Title: "Listing of instances in " + region,
		Body:  table.String(),
	}
}

// renderUsageChart wraps a rendered widget image in a report for one region.
func renderUsageChart(region string, period domain.ReportPeriod, image []byte) *domain.Report {
	phrase := periodPhrases[period]

	return &domain.Report{
		Title: fmt.Sprintf("EC2 Usage in %s for the %s", region, phrase),
		Attachments: []domain.Attachment{{
			Name:  fmt.Sprintf("%s-usage-%s.png", region, strings.ToLower(string(period))),
			Bytes: image,
		}},
	}
}

// renderBillingReport tabulates per-period spend and re-attaches the raw
// export under a period-stamped name. Periods keep the fixed window order;
// windows with no spend recorded are left out.
func renderBillingReport(totals map[string]float64, export []byte, windows []billing.Period, humanRange, attachmentName string) *domain.Report {
	var table strings.Builder

	table.WriteString("```")
	table.WriteString(fmt.Sprintf("%-20s%-15s\n", "PERIOD", "SPEND"))
	table.WriteString(strings.Repeat("-", 35) + "\n")

	for _, window := range windows {
		spend, ok := totals[window.Name]
		if !ok {
			continue
		}

		table.WriteString(fmt.Sprintf("%-20s$%-15.2f\n", window.Name, spend))
	}

	table.WriteString("```")

	return &domain.Report{
		Title: fmt.Sprintf("AWS Cost & Usage Report for %s has been updated.", humanRange),
		Body:  table.String(),
		Attachments: []domain.Attachment{{
			Name:  attachmentName,
			Bytes: export,
		}},
	}
}

// renderBudgetNotification turns the alert message into label/value fields.
// A line qualifies when the part before its first colon is alphabetic or
// whitespace only, which drops the structured preamble lines.
func renderBudgetNotification(message string) *domain.Report {
	var fields []domain.Field

	for _, line := range strings.Split(message, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found || !isAlphaOrSpace(key) {
			continue
		}

		// Only the value is trimmed; the key is kept verbatim.
		fields = append(fields, domain.Field{
			Label: key,
			Value: strings.TrimSpace(value),
		})
	}

	return &domain.Report{
		Title:  ":exclamation: AWS Budget Alert !",
		Fields: fields,
	}
}

func isAlphaOrSpace(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
