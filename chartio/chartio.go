// Package chartio renders amortisation schedules and tornado sensitivity
// summaries as interactive HTML bar charts.
package chartio

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"projectio/amortization"
	"projectio/model"
)

func boolPtr(b bool) *bool { return &b }

// AmortizationChart renders one loan's per-year interest, principal, and
// payment as a grouped bar chart and returns the rendered HTML.
func AmortizationChart(name string, rows []amortization.Row) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Amortization schedule",
			Subtitle: name,
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
		charts.WithToolboxOpts(opts.Toolbox{Show: boolPtr(true)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        boolPtr(true),
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "shadow"},
		}),
		charts.WithLegendOpts(opts.Legend{Show: boolPtr(true)}),
	)

	var xAxis []string
	var interestSeries, principalSeries, paymentSeries []opts.BarData
	for _, row := range rows {
		xAxis = append(xAxis, fmt.Sprintf("Year %d", row.Year))
		interestSeries = append(interestSeries, opts.BarData{Value: row.Interest})
		principalSeries = append(principalSeries, opts.BarData{Value: row.PrincipalPaid})
		paymentSeries = append(paymentSeries, opts.BarData{Value: row.Payment})
	}

	bar.SetXAxis(xAxis).
		AddSeries("interest", interestSeries).
		AddSeries("principal", principalSeries).
		AddSeries("payment", paymentSeries)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("render amortization chart: %w", err)
	}
	return buf.String(), nil
}

// TornadoChart renders the sensitivity driver's tornado summary as a
// horizontal bar chart, one bar per variable, sorted by impact.
func TornadoChart(rows []model.TornadoRow) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sensitivity tornado"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "NPV"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithToolboxOpts(opts.Toolbox{Show: boolPtr(true)}),
	)

	var yAxis []string
	var lowSeries, highSeries []opts.BarData
	for _, row := range rows {
		yAxis = append(yAxis, row.Variable)
		lowSeries = append(lowSeries, opts.BarData{Value: row.LowNPV})
		highSeries = append(highSeries, opts.BarData{Value: row.HighNPV})
	}

	bar.SetXAxis(yAxis).
		AddSeries("low", lowSeries).
		AddSeries("high", highSeries)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("render tornado chart: %w", err)
	}
	return buf.String(), nil
}
