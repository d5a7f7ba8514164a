package service

import (
	"encoding/json"

	"github.com/cloudops/infra-monitor/report/domain"
)

type widgetAxis struct {
	ShowUnits bool   `json:"showUnits"`
	Label     string `json:"label"`
}

// metricWidget is the request body of a CloudWatch metric-widget render.
type metricWidget struct {
	Metrics [][]string `json:"metrics"`
	View    string     `json:"view"`
	Stacked bool       `json:"stacked"`
	Region  string     `json:"region"`
	Title   string     `json:"title"`
	Period  int        `json:"period"`
	Stat    string     `json:"stat"`
	YAxis   struct {
		Left widgetAxis `json:"left"`
	} `json:"yAxis"`
	Start  string `json:"start"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// buildWidget assembles the stacked running-instances chart for one region,
// one time series per allow-listed instance type.
func buildWidget(region string, namespace string, instanceTypes []string, period domain.ReportPeriod) ([]byte, error) {
	metrics := make([][]string, 0, len(instanceTypes))
	for _, instanceType := range instanceTypes {
		metrics = append(metrics, []string{
			namespace, "InstanceCountPerStateAndType",
			"InstanceState", "running",
			"InstanceType", instanceType,
		})
	}

	widget := metricWidget{
		Metrics: metrics,
		View:    "timeSeries",
		Stacked: true,
		Region:  region,
		Title:   "Running Instances in " + region,
		Period:  60,
		Stat:    "Average",
		Start:   widgetStartOffsets[period],
		Width:   1280,
		Height:  380,
	}
	widget.YAxis.Left = widgetAxis{ShowUnits: false, Label: "Number of instances"}

	return json.Marshal(widget)
}
