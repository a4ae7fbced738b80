package lsystem

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Generation holds the string sizes produced at one expansion order.
type Generation struct {
	Order   int
	Length  int     // raw expansion length, before post rules
	Actions int     // length after post rules and minimization
	Growth  float64 // Length / previous Length, 0 for the first generation
}

type GrowthReport struct {
	Title       string
	Generations []Generation
}

// AnalyseGrowth expands the grammar for orders 0..maxOrder and records how
// fast the string grows.
func (l *LSystem) AnalyseGrowth(maxOrder int) GrowthReport {
	report := GrowthReport{Title: l.Title}
	basic := l.Start
	for order := 0; order <= maxOrder; order++ {
		if order > 0 {
			basic = Expand(l.Rules, basic, 1)
		}
		g := Generation{
			Order:   order,
			Length:  len(basic),
			Actions: len(Minimize(Expand(l.PostRules, basic, 1))),
		}
		if order > 0 {
			if prev := report.Generations[order-1].Length; prev > 0 {
				g.Growth = float64(g.Length) / float64(prev)
			}
		}
		report.Generations = append(report.Generations, g)
	}
	return report
}

// AverageGrowth is the mean growth ratio over all generations after the first.
func (r GrowthReport) AverageGrowth() float64 {
	if len(r.Generations) < 2 {
		return 0
	}
	sum := 0.0
	for _, g := range r.Generations[1:] {
		sum += g.Growth
	}
	return sum / float64(len(r.Generations)-1)
}

func (r GrowthReport) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Growth Analysis",
		Subtitle: r.Title + " (avg growth " + strconv.FormatFloat(r.AverageGrowth(), 'f', 4, 64) + ")",
	}))

	labels := make([]string, len(r.Generations))
	lengths := make([]opts.BarData, len(r.Generations))
	actions := make([]opts.BarData, len(r.Generations))
	for i, g := range r.Generations {
		labels[i] = strconv.Itoa(g.Order)
		lengths[i] = opts.BarData{Value: g.Length}
		actions[i] = opts.BarData{Value: g.Actions}
	}

	bar.SetXAxis(labels).
		AddSeries("symbols", lengths).
		AddSeries("actions", actions)
	return bar.Render(w)
}
