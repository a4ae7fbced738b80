package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Pages   prometheus.Counter
	Shapes  *prometheus.CounterVec
	Actions prometheus.Counter
}

// NewMetrics creates the render counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Pages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsvg_pages_total",
			Help: "Total number of pages written",
		}),
		Shapes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lsvg_shapes_total",
				Help: "Total number of shapes rendered, by result",
			},
			[]string{"result"},
		),
		Actions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsvg_drawing_actions_total",
			Help: "Total number of drawing actions emitted",
		}),
	}
	reg.MustRegister(m.Pages, m.Shapes, m.Actions)
	return m
}
