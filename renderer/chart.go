package renderer

import (
	"fmt"

	"github.com/etnz/dispersion"
	"github.com/vicanso/go-charts/v2"
)

// EquityChart renders the window's equity curve as a PNG line chart. The
// title carries the headline statistics so the image is self-contained.
func EquityChart(r *dispersion.WindowReport) ([]byte, error) {
	if r.Equity.Len() == 0 {
		return nil, dispersion.ErrEmptyWindow
	}

	var labels []string
	var values []float64
	for day, v := range r.Equity.Values() {
		labels = append(labels, day.Format("Jan 02"))
		values = append(values, v.AsFloat())
	}

	title := fmt.Sprintf("Equity %s", r.Range)
	subtitle := fmt.Sprintf("Return: %s | Sharpe: %s | MaxDD: %s",
		r.TotalReturn.SignedString(), r.Sharpe, r.MaxDrawdown.PercentString())

	return lineChart(title+"\n"+subtitle, labels, [][]float64{values})
}

// ExposureChart renders the net delta and net vega series as a PNG line
// chart with one line per greek.
func ExposureChart(g *dispersion.GreeksSeries) ([]byte, error) {
	if g.Len() == 0 {
		return nil, dispersion.ErrEmptyHistory
	}

	var labels []string
	var deltas, vegas []float64
	for _, p := range g.Points() {
		labels = append(labels, p.Date.Format("Jan 02"))
		deltas = append(deltas, p.NetDelta)
		vegas = append(vegas, p.NetVega)
	}

	return lineChart("Net Exposure", labels, [][]float64{deltas, vegas})
}

// lineChart renders one or more aligned series as a PNG.
func lineChart(title string, labels []string, series [][]float64) ([]byte, error) {
	minVal, maxVal := series[0][0], series[0][0]
	for _, values := range series {
		for _, v := range values {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	yMin := minVal - padding
	yMax := maxVal + padding

	splitNum := 6
	if len(labels) <= 30 {
		splitNum = len(labels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	p, err := charts.LineRender(
		series,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return p.Bytes()
}
